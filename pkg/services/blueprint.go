package services

import (
	"context"
	"log/slog"

	"github.com/dukex/contractflow/pkg/eventbus"
	"github.com/dukex/contractflow/pkg/events"
	"github.com/dukex/contractflow/pkg/models"
	"github.com/dukex/contractflow/pkg/otelhelper"
	"github.com/dukex/contractflow/pkg/store"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Blueprint exposes blueprint definition operations.
type Blueprint struct {
	store  *store.BlueprintStore
	queue  *Queue
	tracer trace.Tracer
	logger *slog.Logger
	notifier
}

// NewBlueprint creates a new blueprint service.
func NewBlueprint(
	blueprints *store.BlueprintStore,
	queue *Queue,
	publisher eventbus.EventPublisher,
	tracer trace.Tracer,
	logger *slog.Logger,
) *Blueprint {
	return &Blueprint{
		store:    blueprints,
		queue:    queue,
		tracer:   tracer,
		logger:   logger,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

// ListBlueprints returns every blueprint in creation order.
func (b *Blueprint) ListBlueprints(ctx context.Context) []*models.Blueprint {
	_, span := otelhelper.StartSpan(ctx, b.tracer, "blueprint.list")
	defer span.End()

	return b.store.Blueprints()
}

// GetBlueprint returns a copy of the blueprint with the given id.
func (b *Blueprint) GetBlueprint(ctx context.Context, id string) (*models.Blueprint, error) {
	_, span := otelhelper.StartSpan(ctx, b.tracer, "blueprint.get",
		attribute.String(otelhelper.BlueprintIDKey, id),
	)
	defer span.End()

	bp, err := b.store.Blueprint(id)
	if err != nil {
		otelhelper.SetError(span, err)

		return nil, err
	}

	return bp, nil
}

// CreateBlueprint registers a new blueprint with no fields.
func (b *Blueprint) CreateBlueprint(ctx context.Context, name string) (*models.Blueprint, error) {
	ctx, span := otelhelper.StartSpan(ctx, b.tracer, "blueprint.create",
		attribute.String(otelhelper.BlueprintNameKey, name),
	)
	defer span.End()

	var created *models.Blueprint

	err := b.queue.Do(ctx, func() error {
		id, err := b.store.CreateBlueprint(name)
		if err != nil {
			return err
		}

		created, err = b.store.Blueprint(id)

		return err
	})
	if err != nil {
		otelhelper.SetError(span, err)
		b.logger.DebugContext(ctx, "blueprint creation rejected", "name", name, "error", err)

		return nil, err
	}

	span.SetAttributes(attribute.String(otelhelper.BlueprintIDKey, created.ID))
	b.logger.DebugContext(ctx, "blueprint created", "blueprint_id", created.ID, "name", created.Name)
	b.publish(ctx, created.ID, events.NewBlueprintCreated(created))

	return created, nil
}

// AddField appends a field to a blueprint. Contracts already generated from
// it are not affected.
func (b *Blueprint) AddField(ctx context.Context, id, label string, fieldType models.FieldType) (*models.Blueprint, error) {
	ctx, span := otelhelper.StartSpan(ctx, b.tracer, "blueprint.add_field",
		attribute.String(otelhelper.BlueprintIDKey, id),
		attribute.String(otelhelper.FieldLabelKey, label),
		attribute.String(otelhelper.FieldTypeKey, string(fieldType)),
	)
	defer span.End()

	var updated *models.Blueprint

	err := b.queue.Do(ctx, func() error {
		var err error

		updated, err = b.store.AddField(id, label, fieldType)

		return err
	})
	if err != nil {
		otelhelper.SetError(span, err)
		b.logger.DebugContext(ctx, "field rejected",
			"blueprint_id", id,
			"label", label,
			"type", fieldType,
			"error", err,
		)

		return nil, err
	}

	b.logger.DebugContext(ctx, "field added", "blueprint_id", id, "label", label, "type", fieldType)
	b.publish(ctx, id, events.NewBlueprintFieldAdded(updated))

	return updated, nil
}
