// Package models defines the core domain models for blueprints and contracts.
package models

import "slices"

// Blueprint is a reusable template defining an ordered set of typed fields.
// Fields may only be appended after creation.
type Blueprint struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"   validate:"required"`
	Fields []FieldSchema `json:"fields"`
}

// HasField reports whether the blueprint already defines a field with label.
func (b *Blueprint) HasField(label string) bool {
	return slices.ContainsFunc(b.Fields, func(f FieldSchema) bool {
		return f.Label == label
	})
}

// Clone returns a copy of the blueprint that shares no mutable state with b.
func (b *Blueprint) Clone() *Blueprint {
	return &Blueprint{
		ID:     b.ID,
		Name:   b.Name,
		Fields: slices.Clone(b.Fields),
	}
}
