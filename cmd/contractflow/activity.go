package main

import (
	"context"
	"log/slog"

	"github.com/dukex/contractflow/pkg/eventbus"
	"github.com/dukex/contractflow/pkg/events"
)

var activityEvents = []events.EventType{
	events.BlueprintCreatedEvent,
	events.BlueprintFieldAddedEvent,
	events.ContractGeneratedEvent,
	events.ContractFieldUpdatedEvent,
	events.ContractStatusChangedEvent,
}

// subscribeActivityLog logs every domain event the bus delivers.
func subscribeActivityLog(ctx context.Context, bus eventbus.EventSubscriber, logger *slog.Logger) error {
	for _, eventType := range activityEvents {
		if err := bus.Handle(eventType, activityHandler(logger)); err != nil {
			return err
		}
	}

	return bus.Subscribe(ctx)
}

func activityHandler(logger *slog.Logger) eventbus.EventHandler {
	return func(ctx context.Context, event any) error {
		switch e := event.(type) {
		case *events.BlueprintCreated:
			logger.InfoContext(ctx, "Blueprint created", "blueprint_id", e.BlueprintID, "name", e.Name)
		case *events.BlueprintFieldAdded:
			logger.InfoContext(ctx, "Blueprint field added",
				"blueprint_id", e.BlueprintID,
				"label", e.Field.Label,
				"type", e.Field.Type,
			)
		case *events.ContractGenerated:
			logger.InfoContext(ctx, "Contract generated",
				"contract_id", e.ContractID,
				"blueprint_id", e.BlueprintID,
				"blueprint_name", e.BlueprintName,
			)
		case *events.ContractFieldUpdated:
			logger.InfoContext(ctx, "Contract field updated", "contract_id", e.ContractID, "label", e.Label)
		case *events.ContractStatusChanged:
			logger.InfoContext(ctx, "Contract status changed",
				"contract_id", e.ContractID,
				"from", e.From,
				"to", e.To,
			)
		default:
			logger.WarnContext(ctx, "Unknown event", "event", event)
		}

		return nil
	}
}
