package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dukex/contractflow/pkg/eventbus"
	"github.com/dukex/contractflow/pkg/events"
	"github.com/dukex/contractflow/pkg/fieldvalue"
	"github.com/dukex/contractflow/pkg/lifecycle"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/dukex/contractflow/pkg/otelhelper"
	"github.com/dukex/contractflow/pkg/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Contract exposes contract generation, editing and lifecycle operations.
type Contract struct {
	store  *store.ContractStore
	queue  *Queue
	tracer trace.Tracer
	logger *slog.Logger
	notifier
}

// NewContract creates a new contract service.
func NewContract(
	contracts *store.ContractStore,
	queue *Queue,
	publisher eventbus.EventPublisher,
	tracer trace.Tracer,
	logger *slog.Logger,
) *Contract {
	return &Contract{
		store:    contracts,
		queue:    queue,
		tracer:   tracer,
		logger:   logger,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

// ParseStatusFilter validates a filter given by a client. An empty value means All.
func ParseStatusFilter(raw string) (models.StatusFilter, error) {
	if raw == "" || raw == string(models.StatusFilterAll) {
		return models.StatusFilterAll, nil
	}

	if !lifecycle.Valid(models.ContractStatus(raw)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}

	return models.StatusFilter(raw), nil
}

// ListContracts returns the contracts matching filter in creation order.
func (c *Contract) ListContracts(ctx context.Context, filter models.StatusFilter) ([]*models.Contract, error) {
	_, span := otelhelper.StartSpan(ctx, c.tracer, "contract.list",
		attribute.String(otelhelper.StatusKey, string(filter)),
	)
	defer span.End()

	if filter != models.StatusFilterAll && !lifecycle.Valid(models.ContractStatus(filter)) {
		err := fmt.Errorf("%w: %q", ErrInvalidStatus, filter)
		otelhelper.SetError(span, err)

		return nil, err
	}

	contracts := slices.Collect(c.store.ListContracts(filter))
	if contracts == nil {
		contracts = []*models.Contract{}
	}

	return contracts, nil
}

// GetContract returns a copy of the contract with the given id.
func (c *Contract) GetContract(ctx context.Context, id string) (*models.Contract, error) {
	_, span := otelhelper.StartSpan(ctx, c.tracer, "contract.get",
		attribute.String(otelhelper.ContractIDKey, id),
	)
	defer span.End()

	contract, err := c.store.Contract(id)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	return contract, nil
}

// ContractSchema returns the JSON Schema describing the contract's values.
func (c *Contract) ContractSchema(ctx context.Context, id string) (*models.JSONSchema, error) {
	contract, err := c.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	return fieldvalue.ContractSchema(contract), nil
}

// GenerateContract creates a contract from the blueprint's current fields.
func (c *Contract) GenerateContract(ctx context.Context, blueprintID string) (*models.Contract, error) {
	ctx, span := otelhelper.StartSpan(ctx, c.tracer, "contract.generate",
		attribute.String(otelhelper.BlueprintIDKey, blueprintID),
	)
	defer span.End()

	var created *models.Contract

	err := c.queue.Do(ctx, func() error {
		var err error

		created, err = c.store.GenerateContract(blueprintID)

		return err
	})
	if err != nil {
		otelhelper.SetError(span, err)
		c.logger.DebugContext(ctx, "contract generation rejected", "blueprint_id", blueprintID, "error", err)

		return nil, err
	}

	span.SetAttributes(attribute.String(otelhelper.ContractIDKey, created.ID))
	c.logger.DebugContext(ctx, "contract generated",
		"contract_id", created.ID,
		"blueprint_id", blueprintID,
		"fields", len(created.Fields),
	)
	c.publish(ctx, created.ID, events.NewContractGenerated(blueprintID, created))

	return created, nil
}

// SetFieldValue stores value in the labelled field of a non-terminal contract.
func (c *Contract) SetFieldValue(ctx context.Context, id, label string, value any) (*models.Contract, error) {
	ctx, span := otelhelper.StartSpan(ctx, c.tracer, "contract.set_field_value",
		attribute.String(otelhelper.ContractIDKey, id),
		attribute.String(otelhelper.FieldLabelKey, label),
	)
	defer span.End()

	var updated *models.Contract

	err := c.queue.Do(ctx, func() error {
		var err error

		updated, err = c.store.SetFieldValue(id, label, value)

		return err
	})
	if err != nil {
		otelhelper.SetError(span, err)
		c.logger.DebugContext(ctx, "field value rejected", "contract_id", id, "label", label, "error", err)

		return nil, err
	}

	c.logger.DebugContext(ctx, "field value set", "contract_id", id, "label", label)

	if i := updated.Field(label); i >= 0 {
		c.publish(ctx, id, events.NewContractFieldUpdated(id, updated.Fields[i]))
	}

	return updated, nil
}

// AdvanceStatus moves the contract one step along the approval chain.
func (c *Contract) AdvanceStatus(ctx context.Context, id string) (*models.Contract, error) {
	return c.transition(ctx, "contract.advance", id, c.store.AdvanceStatus)
}

// Revoke cancels a Created or Sent contract.
func (c *Contract) Revoke(ctx context.Context, id string) (*models.Contract, error) {
	return c.transition(ctx, "contract.revoke", id, c.store.Revoke)
}

func (c *Contract) transition(
	ctx context.Context,
	name, id string,
	apply func(id string) (*models.Contract, error),
) (*models.Contract, error) {
	ctx, span := otelhelper.StartSpan(ctx, c.tracer, name,
		attribute.String(otelhelper.ContractIDKey, id),
	)
	defer span.End()

	var (
		from    models.ContractStatus
		updated *models.Contract
	)

	err := c.queue.Do(ctx, func() error {
		current, err := c.store.Contract(id)
		if err != nil {
			return err
		}

		from = current.Status
		updated, err = apply(id)

		return err
	})
	if err != nil {
		otelhelper.SetError(span, err, attribute.String(otelhelper.StatusKey, string(from)))
		c.logger.DebugContext(ctx, "transition rejected", "op", name, "contract_id", id, "status", from, "error", err)

		return nil, err
	}

	span.SetAttributes(
		attribute.String(otelhelper.StatusFromKey, string(from)),
		attribute.String(otelhelper.StatusKey, string(updated.Status)),
	)
	c.logger.DebugContext(ctx, "contract status changed", "contract_id", id, "from", from, "to", updated.Status)
	c.publish(ctx, id, events.NewContractStatusChanged(id, from, updated.Status))

	return updated, nil
}
