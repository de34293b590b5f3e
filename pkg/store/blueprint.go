package store

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/dukex/contractflow/pkg/models"
	"github.com/google/uuid"
)

// BlueprintStore holds blueprint definitions in insertion order.
//
// Reads are lock-free loads of the current snapshot. Mutations build a new
// snapshot and install it atomically; they must be serialized by the caller
// (see services.Queue).
type BlueprintStore struct {
	items      atomic.Pointer[[]*models.Blueprint]
	generateID func() string
}

// BlueprintOption configures a BlueprintStore.
type BlueprintOption func(*BlueprintStore)

// WithBlueprintIDs overrides the id generator. Defaults to random UUIDs.
func WithBlueprintIDs(generate func() string) BlueprintOption {
	return func(s *BlueprintStore) {
		s.generateID = generate
	}
}

// NewBlueprintStore creates an empty blueprint store.
func NewBlueprintStore(opts ...BlueprintOption) *BlueprintStore {
	s := &BlueprintStore{generateID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}

	s.items.Store(&[]*models.Blueprint{})

	return s
}

// Snapshot returns the current collection. Entries are shared with the store
// and must be treated as read-only.
func (s *BlueprintStore) Snapshot() []*models.Blueprint {
	return *s.items.Load()
}

// Blueprints returns copies of all blueprints in insertion order.
func (s *BlueprintStore) Blueprints() []*models.Blueprint {
	current := s.Snapshot()

	result := make([]*models.Blueprint, len(current))
	for i, bp := range current {
		result[i] = bp.Clone()
	}

	return result
}

// Blueprint returns a copy of the blueprint with the given id.
func (s *BlueprintStore) Blueprint(id string) (*models.Blueprint, error) {
	current := s.Snapshot()

	i := indexBlueprint(current, id)
	if i < 0 {
		return nil, blueprintError("Blueprint", id, ErrBlueprintNotFound, "")
	}

	return current[i].Clone(), nil
}

// CreateBlueprint appends a blueprint with no fields and returns its id.
// An empty or whitespace-only name is rejected.
func (s *BlueprintStore) CreateBlueprint(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", blueprintError("CreateBlueprint", "", ErrInvalidInput, "name is required")
	}

	bp := &models.Blueprint{
		ID:     s.generateID(),
		Name:   name,
		Fields: []models.FieldSchema{},
	}

	current := s.Snapshot()
	next := make([]*models.Blueprint, len(current), len(current)+1)
	copy(next, current)
	next = append(next, bp)
	s.items.Store(&next)

	return bp.ID, nil
}

// AddField appends a field to a blueprint and returns the updated blueprint.
// Contracts already generated from the blueprint are unaffected.
func (s *BlueprintStore) AddField(blueprintID, label string, fieldType models.FieldType) (*models.Blueprint, error) {
	const op = "AddField"

	current := s.Snapshot()

	i := indexBlueprint(current, blueprintID)
	if i < 0 {
		return nil, blueprintError(op, blueprintID, ErrBlueprintNotFound, "")
	}

	label = models.NormalizeLabel(label)
	if label == "" {
		return nil, blueprintError(op, blueprintID, ErrInvalidInput, "label is required")
	}

	if !fieldType.Valid() {
		return nil, blueprintError(op, blueprintID, ErrInvalidInput, fmt.Sprintf("unknown field type %q", fieldType))
	}

	if current[i].HasField(label) {
		return nil, blueprintError(op, blueprintID, ErrDuplicateFieldLabel, fmt.Sprintf("field %q already exists", label))
	}

	updated := current[i].Clone()
	updated.Fields = append(updated.Fields, models.FieldSchema{Label: label, Type: fieldType})

	next := slices.Clone(current)
	next[i] = updated
	s.items.Store(&next)

	return updated.Clone(), nil
}

func indexBlueprint(items []*models.Blueprint, id string) int {
	return slices.IndexFunc(items, func(bp *models.Blueprint) bool {
		return bp.ID == id
	})
}
