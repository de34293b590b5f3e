package models

import (
	"slices"
	"time"
)

// ContractStatus represents the lifecycle state of a contract.
type ContractStatus string

const (
	ContractStatusCreated  ContractStatus = "Created"  // Initial state, editable
	ContractStatusApproved ContractStatus = "Approved" // Editable
	ContractStatusSent     ContractStatus = "Sent"     // Editable, revocable
	ContractStatusSigned   ContractStatus = "Signed"   // Editable
	ContractStatusLocked   ContractStatus = "Locked"   // Terminal, immutable
	ContractStatusRevoked  ContractStatus = "Revoked"  // Terminal, immutable
)

// StatusFilter selects contracts by status. StatusFilterAll matches every contract.
type StatusFilter string

const StatusFilterAll StatusFilter = "All"

// Matches reports whether a contract with status s passes the filter.
func (f StatusFilter) Matches(s ContractStatus) bool {
	return f == StatusFilterAll || ContractStatus(f) == s
}

// Contract is a document generated from a blueprint snapshot. It keeps a copy
// of the blueprint name and field schema and never refers back to the blueprint.
type Contract struct {
	ID            string         `json:"id"`
	BlueprintName string         `json:"blueprint_name"`
	Fields        []FieldValue   `json:"fields"`
	Status        ContractStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Field returns the index of the field with the given label, or -1.
func (c *Contract) Field(label string) int {
	return slices.IndexFunc(c.Fields, func(f FieldValue) bool {
		return f.Label == label
	})
}

// Clone returns a copy of the contract that shares no mutable state with c.
func (c *Contract) Clone() *Contract {
	return &Contract{
		ID:            c.ID,
		BlueprintName: c.BlueprintName,
		Fields:        slices.Clone(c.Fields),
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
	}
}
