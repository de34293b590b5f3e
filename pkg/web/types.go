// Package web provides HTTP request and response types for the contract API.
package web

import (
	"github.com/dukex/contractflow/pkg/dashboard"
	"github.com/dukex/contractflow/pkg/models"
)

// CreateBlueprintRequest represents the request body for creating a new blueprint.
type CreateBlueprintRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddFieldRequest represents the request body for appending a field to a blueprint.
type AddFieldRequest struct {
	Label string           `json:"label" validate:"required"`
	Type  models.FieldType `json:"type"  validate:"required,oneof=Text Date Checkbox Signature"`
}

// GenerateContractRequest represents the request body for generating a contract.
type GenerateContractRequest struct {
	BlueprintID string `json:"blueprint_id" validate:"required"`
}

// SetFieldValueRequest represents the request body for setting a contract field.
// Value must be a JSON string for Text, Date and Signature fields and a
// boolean for Checkbox fields.
type SetFieldValueRequest struct {
	Label string `json:"label" validate:"required"`
	Value any    `json:"value"`
}

// BlueprintListResponse is returned by GET /blueprints.
type BlueprintListResponse struct {
	Blueprints []*models.Blueprint `json:"blueprints"`
	TotalCount int                 `json:"total_count"`
}

// ContractListResponse is returned by GET /contracts.
type ContractListResponse struct {
	Contracts  []dashboard.ContractView `json:"contracts"`
	Status     models.StatusFilter      `json:"status"`
	TotalCount int                      `json:"total_count"`
}
