package events

import (
	"encoding/json"
	"testing"

	"github.com/dukex/contractflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractStatusChanged_JSONSerialization(t *testing.T) {
	original := NewContractStatusChanged("contract-1", models.ContractStatusSent, models.ContractStatusRevoked)

	jsonData, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"contract_id":"contract-1"`)
	assert.Contains(t, string(jsonData), `"from":"Sent"`)
	assert.Contains(t, string(jsonData), `"to":"Revoked"`)
	assert.Contains(t, string(jsonData), `"type":"contract.status_changed"`)

	var deserialized ContractStatusChanged

	err = json.Unmarshal(jsonData, &deserialized)
	require.NoError(t, err)
	assert.Equal(t, original.ContractID, deserialized.ContractID)
	assert.Equal(t, original.From, deserialized.From)
	assert.Equal(t, original.To, deserialized.To)
	assert.Equal(t, ContractStatusChangedEvent, deserialized.GetType())
}

func TestNewBlueprintFieldAdded(t *testing.T) {
	bp := &models.Blueprint{
		ID:   "bp-1",
		Name: "NDA",
		Fields: []models.FieldSchema{
			{Label: "Full Name", Type: models.FieldTypeText},
			{Label: "Agree", Type: models.FieldTypeCheckbox},
		},
	}

	event := NewBlueprintFieldAdded(bp)

	assert.Equal(t, "bp-1", event.BlueprintID)
	assert.Equal(t, models.FieldSchema{Label: "Agree", Type: models.FieldTypeCheckbox}, event.Field)
	assert.Equal(t, 2, event.FieldCount)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestNewContractFieldUpdated_OmitsValue(t *testing.T) {
	event := NewContractFieldUpdated("contract-1", models.FieldValue{
		Label: "Signature",
		Type:  models.FieldTypeSignature,
		Value: "J. Doe",
	})

	jsonData, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonData), "J. Doe")
	assert.Contains(t, string(jsonData), `"label":"Signature"`)
}

func TestNewContractGenerated(t *testing.T) {
	contract := &models.Contract{
		ID:            "contract-1",
		BlueprintName: "NDA",
		Status:        models.ContractStatusCreated,
		Fields:        []models.FieldValue{{Label: "Full Name", Type: models.FieldTypeText, Value: ""}},
	}

	event := NewContractGenerated("bp-1", contract)

	assert.Equal(t, ContractGeneratedEvent, event.GetType())
	assert.Equal(t, "bp-1", event.BlueprintID)
	assert.Equal(t, "NDA", event.BlueprintName)
	assert.Equal(t, 1, event.FieldCount)
}
