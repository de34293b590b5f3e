package fieldvalue_test

import (
	"encoding/json"
	"testing"

	"github.com/dukex/contractflow/pkg/fieldvalue"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fieldType models.FieldType
		value     any
		wantErr   bool
	}{
		{"text string", models.FieldTypeText, "hello", false},
		{"text empty", models.FieldTypeText, "", false},
		{"text bool", models.FieldTypeText, false, true},
		{"text number", models.FieldTypeText, 3.5, true},
		{"signature string", models.FieldTypeSignature, "J. Doe", false},
		{"signature object", models.FieldTypeSignature, map[string]any{"name": "J"}, true},
		{"checkbox true", models.FieldTypeCheckbox, true, false},
		{"checkbox false", models.FieldTypeCheckbox, false, false},
		{"checkbox string", models.FieldTypeCheckbox, "on", true},
		{"checkbox nil", models.FieldTypeCheckbox, nil, true},
		{"date iso", models.FieldTypeDate, "2026-10-17", false},
		{"date empty", models.FieldTypeDate, "", false},
		{"date impossible day", models.FieldTypeDate, "2026-02-30", true},
		{"date with time", models.FieldTypeDate, "2026-10-17T10:00:00Z", true},
		{"date locale", models.FieldTypeDate, "10/17/2026", true},
		{"date bool", models.FieldTypeDate, true, true},
		{"unknown type", models.FieldType("Number"), "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fieldvalue.Check(tt.fieldType, tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, fieldvalue.ErrInvalidValue)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPropertyFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boolean", fieldvalue.PropertyFor(models.FieldTypeCheckbox).Type)
	assert.Equal(t, "string", fieldvalue.PropertyFor(models.FieldTypeText).Type)
	assert.Equal(t, "string", fieldvalue.PropertyFor(models.FieldTypeSignature).Type)

	date := fieldvalue.PropertyFor(models.FieldTypeDate)
	assert.Equal(t, "string", date.Type)
	assert.Equal(t, fieldvalue.DateFormat, date.Format)
}

func sampleContract(status models.ContractStatus) *models.Contract {
	return &models.Contract{
		ID:            "ct-1",
		BlueprintName: "NDA",
		Status:        status,
		Fields: []models.FieldValue{
			{Label: "Full Name", Type: models.FieldTypeText, Value: "Ada"},
			{Label: "Effective", Type: models.FieldTypeDate, Value: ""},
			{Label: "Agree", Type: models.FieldTypeCheckbox, Value: false},
		},
	}
}

func TestContractSchema(t *testing.T) {
	t.Parallel()

	schema := fieldvalue.ContractSchema(sampleContract(models.ContractStatusSent))

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, "NDA", schema.Title)
	assert.False(t, schema.ReadOnly)
	require.NotNil(t, schema.AdditionalProperties)
	assert.False(t, *schema.AdditionalProperties)
	require.Len(t, schema.Properties, 3)

	agree := schema.Properties["Agree"]
	assert.Equal(t, "boolean", agree.Type)
	assert.Equal(t, false, agree.Default)
	assert.Equal(t, "Agree", agree.Title)

	body, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"default":false`)
}

func TestContractSchema_TerminalIsReadOnly(t *testing.T) {
	t.Parallel()

	for _, status := range []models.ContractStatus{models.ContractStatusLocked, models.ContractStatusRevoked} {
		schema := fieldvalue.ContractSchema(sampleContract(status))
		assert.True(t, schema.ReadOnly)

		for label, prop := range schema.Properties {
			assert.True(t, prop.ReadOnly, label)
		}
	}
}

func TestContractSchema_AcceptsCurrentValues(t *testing.T) {
	t.Parallel()

	contract := sampleContract(models.ContractStatusCreated)
	schema := fieldvalue.ContractSchema(contract)

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(fieldvalue.Values(contract)),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "%v", result.Errors())

	result, err = gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(map[string]any{"Agree": "yes", "Unknown": 1}),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid())
}
