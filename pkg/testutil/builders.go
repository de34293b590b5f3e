// Package testutil provides test data builders and utilities for testing.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/dukex/contractflow/pkg/models"
	"github.com/google/uuid"
)

// FixedTime is the creation instant used by CreateTestContract and FixedClock.
var FixedTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// FixedClock always returns FixedTime.
func FixedClock() time.Time {
	return FixedTime
}

// SequentialIDs returns a generator yielding prefix-1, prefix-2, ...
// It is safe for concurrent use.
func SequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)

	return func() string {
		mu.Lock()
		defer mu.Unlock()

		n++

		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// CreateTestBlueprint creates an NDA blueprint with default values that can be overridden.
func CreateTestBlueprint(overrides ...func(*models.Blueprint)) *models.Blueprint {
	bp := &models.Blueprint{
		ID:   uuid.New().String(),
		Name: "NDA",
		Fields: []models.FieldSchema{
			{Label: "Full Name", Type: models.FieldTypeText},
			{Label: "Agree", Type: models.FieldTypeCheckbox},
		},
	}

	for _, override := range overrides {
		override(bp)
	}

	return bp
}

// WithFields replaces the blueprint fields.
func WithFields(fields ...models.FieldSchema) func(*models.Blueprint) {
	return func(bp *models.Blueprint) {
		bp.Fields = fields
	}
}

// CreateTestContract creates a Created contract generated from the default
// test blueprint, with overrides applied.
func CreateTestContract(overrides ...func(*models.Contract)) *models.Contract {
	bp := CreateTestBlueprint()

	fields := make([]models.FieldValue, len(bp.Fields))
	for i, schema := range bp.Fields {
		fields[i] = models.NewFieldValue(schema)
	}

	contract := &models.Contract{
		ID:            uuid.New().String(),
		BlueprintName: bp.Name,
		Fields:        fields,
		Status:        models.ContractStatusCreated,
		CreatedAt:     FixedTime,
	}

	for _, override := range overrides {
		override(contract)
	}

	return contract
}

// WithStatus sets the contract status.
func WithStatus(status models.ContractStatus) func(*models.Contract) {
	return func(c *models.Contract) {
		c.Status = status
	}
}

// WithValue sets the value of the labelled field, appending a Text field when missing.
func WithValue(label string, value any) func(*models.Contract) {
	return func(c *models.Contract) {
		if i := c.Field(label); i >= 0 {
			c.Fields[i].Value = value

			return
		}

		c.Fields = append(c.Fields, models.FieldValue{Label: label, Type: models.FieldTypeText, Value: value})
	}
}

// WithContractFields replaces the contract fields.
func WithContractFields(fields ...models.FieldValue) func(*models.Contract) {
	return func(c *models.Contract) {
		c.Fields = fields
	}
}
