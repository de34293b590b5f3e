package models

import (
	"strings"
)

// FieldType is the kind of value a blueprint field holds.
type FieldType string

const (
	FieldTypeText      FieldType = "Text"
	FieldTypeDate      FieldType = "Date"      // ISO date string, YYYY-MM-DD
	FieldTypeCheckbox  FieldType = "Checkbox"  // boolean
	FieldTypeSignature FieldType = "Signature" // free-form string
)

// FieldTypes returns every supported field type in display order.
func FieldTypes() []FieldType {
	return []FieldType{FieldTypeText, FieldTypeDate, FieldTypeCheckbox, FieldTypeSignature}
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeDate, FieldTypeCheckbox, FieldTypeSignature:
		return true
	default:
		return false
	}
}

// ZeroValue returns the default value a new contract field of this type starts with.
func (t FieldType) ZeroValue() any {
	if t == FieldTypeCheckbox {
		return false
	}

	return ""
}

// FieldSchema defines one slot in a blueprint. It is immutable once created.
type FieldSchema struct {
	Label string    `json:"label" validate:"required"`
	Type  FieldType `json:"type"  validate:"required,oneof=Text Date Checkbox Signature"`
}

// FieldValue holds the data for one contract field. Value is a string for
// Text, Date and Signature fields and a bool for Checkbox fields.
type FieldValue struct {
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
	Value any       `json:"value"`
}

// NewFieldValue creates a zero-valued field from a schema entry.
func NewFieldValue(schema FieldSchema) FieldValue {
	return FieldValue{
		Label: schema.Label,
		Type:  schema.Type,
		Value: schema.Type.ZeroValue(),
	}
}

// String returns the value as a string, or "" when the field does not hold one.
func (f FieldValue) String() string {
	s, _ := f.Value.(string)

	return s
}

// Checked returns the value of a Checkbox field.
func (f FieldValue) Checked() bool {
	b, _ := f.Value.(bool)

	return b
}

// NormalizeLabel trims surrounding whitespace from a field label.
func NormalizeLabel(label string) string {
	return strings.TrimSpace(label)
}
