// Package store provides standardized error types for store operations.
package store

import (
	"errors"
	"fmt"
)

// Standard store errors. A failed operation never changes state, so callers
// that only need fire-and-forget semantics may ignore them.
var (
	// ErrBlueprintNotFound indicates a blueprint id did not resolve.
	ErrBlueprintNotFound = errors.New("blueprint not found")

	// ErrContractNotFound indicates a contract id did not resolve.
	ErrContractNotFound = errors.New("contract not found")

	// ErrFieldNotFound indicates a contract has no field with the given label.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidInput indicates an empty name or label, or an unknown field type.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateFieldLabel indicates a blueprint already has a field with the label.
	ErrDuplicateFieldLabel = errors.New("duplicate field label")

	// ErrFieldTypeMismatch indicates a value does not fit the field's declared type.
	ErrFieldTypeMismatch = errors.New("field type mismatch")

	// ErrIllegalTransition indicates the contract status does not permit the operation.
	ErrIllegalTransition = errors.New("illegal transition")
)

// BlueprintError wraps blueprint-related errors with additional context.
type BlueprintError struct {
	Op          string // Operation being performed (e.g., "CreateBlueprint", "AddField")
	BlueprintID string // Blueprint ID if applicable
	Err         error  // Underlying error
	Message     string // Additional context message
}

func (e *BlueprintError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed for blueprint %q: %s (%v)", e.Op, e.BlueprintID, e.Message, e.Err)
	}

	return fmt.Sprintf("%s failed for blueprint %q: %v", e.Op, e.BlueprintID, e.Err)
}

func (e *BlueprintError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for blueprint errors.
func (e *BlueprintError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// ContractError wraps contract-related errors with additional context.
type ContractError struct {
	Op         string // Operation being performed
	ContractID string // Contract ID if applicable
	Label      string // Field label for field operations
	Err        error  // Underlying error
	Message    string // Additional context message
}

func (e *ContractError) Error() string {
	target := fmt.Sprintf("contract %q", e.ContractID)
	if e.Label != "" {
		target = fmt.Sprintf("field %q of contract %q", e.Label, e.ContractID)
	}

	if e.Message != "" {
		return fmt.Sprintf("%s failed for %s: %s (%v)", e.Op, target, e.Message, e.Err)
	}

	return fmt.Sprintf("%s failed for %s: %v", e.Op, target, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func (e *ContractError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func blueprintError(op, id string, err error, message string) *BlueprintError {
	return &BlueprintError{Op: op, BlueprintID: id, Err: err, Message: message}
}

func contractError(op, id, label string, err error, message string) *ContractError {
	return &ContractError{Op: op, ContractID: id, Label: label, Err: err, Message: message}
}

// IsNotFound checks if an error indicates an id or label did not resolve.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBlueprintNotFound) ||
		errors.Is(err, ErrContractNotFound) ||
		errors.Is(err, ErrFieldNotFound)
}

// IsInvalidInput checks if an error indicates rejected input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicateFieldLabel) ||
		errors.Is(err, ErrFieldTypeMismatch)
}

// IsIllegalTransition checks if an error indicates a lifecycle violation.
func IsIllegalTransition(err error) bool {
	return errors.Is(err, ErrIllegalTransition)
}
