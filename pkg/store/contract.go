package store

import (
	"iter"
	"slices"
	"sync/atomic"
	"time"

	"github.com/dukex/contractflow/pkg/fieldvalue"
	"github.com/dukex/contractflow/pkg/lifecycle"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/google/uuid"
)

// BlueprintReader resolves blueprints at contract generation time.
type BlueprintReader interface {
	Blueprint(id string) (*models.Blueprint, error)
}

// ContractStore holds contract instances in insertion order.
//
// Like BlueprintStore, reads load an immutable snapshot and mutations swap in
// a new one. Only the changed entry is replaced; every other entry keeps its
// identity. Mutations must be serialized by the caller.
type ContractStore struct {
	items      atomic.Pointer[[]*models.Contract]
	blueprints BlueprintReader
	generateID func() string
	now        func() time.Time
}

// ContractOption configures a ContractStore.
type ContractOption func(*ContractStore)

// WithContractIDs overrides the id generator. Defaults to random UUIDs.
func WithContractIDs(generate func() string) ContractOption {
	return func(s *ContractStore) {
		s.generateID = generate
	}
}

// WithClock overrides the clock used for creation dates.
func WithClock(now func() time.Time) ContractOption {
	return func(s *ContractStore) {
		s.now = now
	}
}

// NewContractStore creates an empty contract store reading blueprints from blueprints.
func NewContractStore(blueprints BlueprintReader, opts ...ContractOption) *ContractStore {
	s := &ContractStore{
		blueprints: blueprints,
		generateID: uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.items.Store(&[]*models.Contract{})

	return s
}

// Snapshot returns the current collection. Entries are shared with the store
// and must be treated as read-only.
func (s *ContractStore) Snapshot() []*models.Contract {
	return *s.items.Load()
}

// Contract returns a copy of the contract with the given id.
func (s *ContractStore) Contract(id string) (*models.Contract, error) {
	current := s.Snapshot()

	i := indexContract(current, id)
	if i < 0 {
		return nil, contractError("Contract", id, "", ErrContractNotFound, "")
	}

	return current[i].Clone(), nil
}

// ListContracts returns a lazy sequence of contracts matching filter, in
// insertion order. Each iteration reads the snapshot current when it starts,
// so the sequence can be ranged over again to observe later changes.
func (s *ContractStore) ListContracts(filter models.StatusFilter) iter.Seq[*models.Contract] {
	return func(yield func(*models.Contract) bool) {
		for _, c := range s.Snapshot() {
			if !filter.Matches(c.Status) {
				continue
			}

			if !yield(c.Clone()) {
				return
			}
		}
	}
}

// GenerateContract snapshots the blueprint's current name and fields into a
// new contract in the initial status and returns it.
func (s *ContractStore) GenerateContract(blueprintID string) (*models.Contract, error) {
	bp, err := s.blueprints.Blueprint(blueprintID)
	if err != nil {
		return nil, contractError("GenerateContract", "", "", ErrBlueprintNotFound, "blueprint "+blueprintID)
	}

	fields := make([]models.FieldValue, len(bp.Fields))
	for i, schema := range bp.Fields {
		fields[i] = models.NewFieldValue(schema)
	}

	contract := &models.Contract{
		ID:            s.generateID(),
		BlueprintName: bp.Name,
		Fields:        fields,
		Status:        lifecycle.Initial,
		CreatedAt:     s.now().UTC(),
	}

	current := s.Snapshot()
	next := make([]*models.Contract, len(current), len(current)+1)
	copy(next, current)
	next = append(next, contract)
	s.items.Store(&next)

	return contract.Clone(), nil
}

// SetFieldValue replaces the value of the labelled field. Terminal contracts,
// unknown labels and values of the wrong type are rejected.
func (s *ContractStore) SetFieldValue(contractID, label string, value any) (*models.Contract, error) {
	const op = "SetFieldValue"

	return s.replace(op, contractID, func(c *models.Contract) error {
		if !lifecycle.CanEdit(c.Status) {
			return contractError(op, contractID, label, ErrIllegalTransition, "contract is "+string(c.Status))
		}

		i := c.Field(label)
		if i < 0 {
			return contractError(op, contractID, label, ErrFieldNotFound, "")
		}

		if err := fieldvalue.Check(c.Fields[i].Type, value); err != nil {
			return contractError(op, contractID, label, ErrFieldTypeMismatch, err.Error())
		}

		c.Fields[i].Value = value

		return nil
	})
}

// AdvanceStatus moves the contract to the next status in the chain.
// Terminal contracts stay where they are and the call reports ErrIllegalTransition.
func (s *ContractStore) AdvanceStatus(contractID string) (*models.Contract, error) {
	const op = "AdvanceStatus"

	return s.replace(op, contractID, func(c *models.Contract) error {
		if !lifecycle.CanAdvance(c.Status) {
			return contractError(op, contractID, "", ErrIllegalTransition, "contract is "+string(c.Status))
		}

		c.Status = lifecycle.Advance(c.Status)

		return nil
	})
}

// Revoke moves a Created or Sent contract to Revoked.
func (s *ContractStore) Revoke(contractID string) (*models.Contract, error) {
	const op = "Revoke"

	return s.replace(op, contractID, func(c *models.Contract) error {
		next, ok := lifecycle.Revoke(c.Status)
		if !ok {
			return contractError(op, contractID, "", ErrIllegalTransition, "contract is "+string(c.Status))
		}

		c.Status = next

		return nil
	})
}

// replace applies mutate to a copy of the contract and installs a new
// snapshot holding it. Nothing is installed when mutate fails.
func (s *ContractStore) replace(op, contractID string, mutate func(*models.Contract) error) (*models.Contract, error) {
	current := s.Snapshot()

	i := indexContract(current, contractID)
	if i < 0 {
		return nil, contractError(op, contractID, "", ErrContractNotFound, "")
	}

	updated := current[i].Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}

	next := slices.Clone(current)
	next[i] = updated
	s.items.Store(&next)

	return updated.Clone(), nil
}

func indexContract(items []*models.Contract, id string) int {
	return slices.IndexFunc(items, func(c *models.Contract) bool {
		return c.ID == id
	})
}
