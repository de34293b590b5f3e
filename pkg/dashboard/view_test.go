package dashboard

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dukex/contractflow/pkg/lifecycle"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/dukex/contractflow/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields []models.FieldValue
		want   string
	}{
		{
			name:   "first name field",
			fields: []models.FieldValue{{Label: "Full Name", Type: models.FieldTypeText, Value: "Ada"}},
			want:   "Ada",
		},
		{
			name:   "case insensitive",
			fields: []models.FieldValue{{Label: "CLIENT NAME", Type: models.FieldTypeText, Value: "Acme"}},
			want:   "Acme",
		},
		{
			name:   "substring match",
			fields: []models.FieldValue{{Label: "Username", Type: models.FieldTypeText, Value: "ada42"}},
			want:   "ada42",
		},
		{
			name: "only the first match counts",
			fields: []models.FieldValue{
				{Label: "Name", Type: models.FieldTypeText, Value: ""},
				{Label: "Company Name", Type: models.FieldTypeText, Value: "Acme"},
			},
			want: Untitled,
		},
		{
			name:   "no name field",
			fields: []models.FieldValue{{Label: "Party", Type: models.FieldTypeText, Value: "Ada"}},
			want:   Untitled,
		},
		{
			name:   "non text value",
			fields: []models.FieldValue{{Label: "Named", Type: models.FieldTypeCheckbox, Value: true}},
			want:   Untitled,
		},
		{
			name:   "no fields",
			fields: nil,
			want:   Untitled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			contract := testutil.CreateTestContract(testutil.WithContractFields(tt.fields...))
			assert.Equal(t, tt.want, DisplayName(contract))
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-03-14", FormatDate(testutil.FixedTime))
	assert.Equal(t, "2026-12-31", FormatDate(time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)))
	assert.Empty(t, FormatDate(time.Time{}))
}

func TestNewContractView_Actions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status models.ContractStatus
		want   []lifecycle.Action
	}{
		{models.ContractStatusCreated, []lifecycle.Action{lifecycle.ActionAdvance, lifecycle.ActionRevoke, lifecycle.ActionEdit}},
		{models.ContractStatusApproved, []lifecycle.Action{lifecycle.ActionAdvance, lifecycle.ActionEdit}},
		{models.ContractStatusSent, []lifecycle.Action{lifecycle.ActionAdvance, lifecycle.ActionRevoke, lifecycle.ActionEdit}},
		{models.ContractStatusSigned, []lifecycle.Action{lifecycle.ActionAdvance, lifecycle.ActionEdit}},
		{models.ContractStatusLocked, []lifecycle.Action{}},
		{models.ContractStatusRevoked, []lifecycle.Action{}},
	}

	for _, tt := range tests {
		view := NewContractView(testutil.CreateTestContract(testutil.WithStatus(tt.status)))
		assert.Equal(t, tt.want, view.Actions, string(tt.status))
	}
}

func TestContractView_JSON(t *testing.T) {
	t.Parallel()

	contract := testutil.CreateTestContract(testutil.WithValue("Full Name", "Ada"))
	view := NewContractView(contract)

	body, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, contract.ID, decoded["id"])
	assert.Equal(t, "NDA", decoded["blueprint_name"])
	assert.Equal(t, "Ada", decoded["display_name"])
	assert.Equal(t, "2026-03-14", decoded["created_date"])
	assert.Equal(t, []any{"advance", "revoke", "edit"}, decoded["actions"])

	var roundTrip ContractView
	require.NoError(t, json.Unmarshal(body, &roundTrip))
	assert.Equal(t, contract.ID, roundTrip.ID)
	assert.Equal(t, "Ada", roundTrip.DisplayName)
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	views := Views([]*models.Contract{
		testutil.CreateTestContract(testutil.WithValue("Full Name", "Ada Lovelace")),
		testutil.CreateTestContract(testutil.WithStatus(models.ContractStatusLocked)),
	})

	var buf bytes.Buffer

	n := FormatTable(&buf, views, models.StatusFilterAll)
	assert.Equal(t, 2, n)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Contains(t, lines[0], "CONTRACT NAME")
	assert.Contains(t, lines[0], "ACTIONS")
	assert.Contains(t, lines[2], "Ada Lovelace")
	assert.Contains(t, lines[2], "Created")
	assert.Contains(t, lines[2], "2026-03-14")
	assert.Contains(t, lines[2], "advance, revoke, edit")
	assert.Contains(t, lines[3], Untitled)
	assert.Contains(t, lines[3], "Locked")
	assert.True(t, strings.HasSuffix(lines[3], " -"))
	assert.Contains(t, out, "2 contracts (status: All)")
}

func TestFormatTable_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	n := FormatTable(&buf, nil, models.StatusFilter(models.ContractStatusSigned))
	assert.Zero(t, n)
	assert.Equal(t, "No contracts found (status: Signed)\n", buf.String())
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
