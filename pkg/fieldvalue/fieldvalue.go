// Package fieldvalue checks contract field values against their declared
// types and describes contract forms as JSON Schema documents.
package fieldvalue

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dukex/contractflow/pkg/lifecycle"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/xeipuuv/gojsonschema"
)

// DateFormat is the JSON Schema format name for ISO dates. The empty string
// is accepted so a date can be cleared.
const DateFormat = "contract-date"

const schemaDraft = "http://json-schema.org/draft-07/schema#"

// ErrInvalidValue is returned when a value does not fit a field type.
var ErrInvalidValue = errors.New("invalid field value")

func init() {
	gojsonschema.FormatCheckers.Add(DateFormat, dateChecker{})
}

type dateChecker struct{}

func (dateChecker) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok || s == "" {
		return true
	}

	_, err := time.Parse(time.DateOnly, s)

	return err == nil
}

// PropertyFor returns the JSON Schema property for a field type.
func PropertyFor(t models.FieldType) *models.Property {
	switch t {
	case models.FieldTypeCheckbox:
		return &models.Property{Type: "boolean"}
	case models.FieldTypeDate:
		return &models.Property{Type: "string", Format: DateFormat}
	default:
		return &models.Property{Type: "string"}
	}
}

// Check reports whether value may be stored in a field of type t.
// Checkbox fields take booleans; every other type takes strings, and Date
// strings must be YYYY-MM-DD or empty. Values are never coerced.
func Check(t models.FieldType, value any) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown field type %q", ErrInvalidValue, t)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(PropertyFor(t)),
		gojsonschema.NewGoLoader(value),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.Description())
		}

		return fmt.Errorf("%w: %s expects %s: %s", ErrInvalidValue, t, PropertyFor(t).Type, strings.Join(details, "; "))
	}

	return nil
}

// ContractSchema describes the editable values of a contract. Every property
// is read-only once the contract reaches a terminal status.
func ContractSchema(contract *models.Contract) *models.JSONSchema {
	noExtra := false
	readOnly := !lifecycle.CanEdit(contract.Status)

	schema := &models.JSONSchema{
		Schema:               schemaDraft,
		Type:                 "object",
		Title:                contract.BlueprintName,
		Description:          fmt.Sprintf("Contract %s (%s)", contract.ID, contract.Status),
		Properties:           make(map[string]*models.Property, len(contract.Fields)),
		AdditionalProperties: &noExtra,
		ReadOnly:             readOnly,
	}

	for _, field := range contract.Fields {
		prop := PropertyFor(field.Type)
		prop.Title = field.Label
		prop.Default = field.Type.ZeroValue()
		prop.ReadOnly = readOnly
		schema.Properties[field.Label] = prop
	}

	return schema
}

// Values returns the contract's field values keyed by label.
func Values(contract *models.Contract) map[string]any {
	values := make(map[string]any, len(contract.Fields))
	for _, field := range contract.Fields {
		values[field.Label] = field.Value
	}

	return values
}
