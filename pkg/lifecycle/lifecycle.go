// Package lifecycle computes legal contract status transitions and field
// mutability. Every function is pure.
//
// The forward chain is Created -> Approved -> Sent -> Signed -> Locked.
// Revoked is reached only through Revoke, and only from Created or Sent.
// Locked and Revoked are terminal.
package lifecycle

import (
	"slices"

	"github.com/dukex/contractflow/pkg/models"
)

// Action is an operation a UI collaborator may offer for a contract.
type Action string

const (
	ActionAdvance Action = "advance"
	ActionRevoke  Action = "revoke"
	ActionEdit    Action = "edit"
)

var chain = []models.ContractStatus{
	models.ContractStatusCreated,
	models.ContractStatusApproved,
	models.ContractStatusSent,
	models.ContractStatusSigned,
	models.ContractStatusLocked,
}

// Initial is the status of a freshly generated contract.
const Initial = models.ContractStatusCreated

// Statuses returns every status, forward chain first, then Revoked.
func Statuses() []models.ContractStatus {
	return append(slices.Clone(chain), models.ContractStatusRevoked)
}

// Valid reports whether s is a known status.
func Valid(s models.ContractStatus) bool {
	return s == models.ContractStatusRevoked || slices.Contains(chain, s)
}

// IsTerminal reports whether no transition or edit is possible from s.
func IsTerminal(s models.ContractStatus) bool {
	return s == models.ContractStatusLocked || s == models.ContractStatusRevoked
}

// Advance returns the next status in the forward chain. Terminal and unknown
// statuses are returned unchanged.
func Advance(s models.ContractStatus) models.ContractStatus {
	if IsTerminal(s) {
		return s
	}

	i := slices.Index(chain, s)
	if i < 0 {
		return s
	}

	return chain[i+1]
}

// CanAdvance reports whether Advance(s) would change the status.
func CanAdvance(s models.ContractStatus) bool {
	return Advance(s) != s
}

// CanRevoke reports whether a contract in status s may be revoked.
func CanRevoke(s models.ContractStatus) bool {
	return s == models.ContractStatusCreated || s == models.ContractStatusSent
}

// Revoke returns Revoked and true when s permits revocation, otherwise s and false.
func Revoke(s models.ContractStatus) (models.ContractStatus, bool) {
	if !CanRevoke(s) {
		return s, false
	}

	return models.ContractStatusRevoked, true
}

// CanEdit reports whether field values may change while in status s.
// Approval, sending and signing do not freeze content; only terminal states do.
func CanEdit(s models.ContractStatus) bool {
	return Valid(s) && !IsTerminal(s)
}

// Actions lists the actions available from status s.
func Actions(s models.ContractStatus) []Action {
	actions := make([]Action, 0, 3)

	if CanAdvance(s) {
		actions = append(actions, ActionAdvance)
	}

	if CanRevoke(s) {
		actions = append(actions, ActionRevoke)
	}

	if CanEdit(s) {
		actions = append(actions, ActionEdit)
	}

	return actions
}
