// Package services composes the stores into the operations clients call:
// serialized mutations, tracing, logging and event notification.
package services

import (
	"errors"

	"github.com/dukex/contractflow/pkg/store"
)

// Business Logic Errors - These indicate client errors (4xx responses).
var (
	// Validation Errors (400 Bad Request).
	ErrInvalidStatus = errors.New("invalid contract status")

	// Re-exported store errors so callers need only this package.
	ErrBlueprintNotFound   = store.ErrBlueprintNotFound
	ErrContractNotFound    = store.ErrContractNotFound
	ErrFieldNotFound       = store.ErrFieldNotFound
	ErrInvalidInput        = store.ErrInvalidInput
	ErrDuplicateFieldLabel = store.ErrDuplicateFieldLabel
	ErrFieldTypeMismatch   = store.ErrFieldTypeMismatch
	ErrIllegalTransition   = store.ErrIllegalTransition
)

// IsValidationError checks if an error is a validation error that should return HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrFieldTypeMismatch)
}

// IsNotFoundError checks if an error means an id or label did not resolve (HTTP 404).
func IsNotFoundError(err error) bool {
	return store.IsNotFound(err)
}

// IsConflictError checks if an error is a business logic conflict that should return HTTP 409.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateFieldLabel) ||
		store.IsIllegalTransition(err)
}
