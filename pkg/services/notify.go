package services

import (
	"context"
	"log/slog"

	"github.com/dukex/contractflow/pkg/eventbus"
)

// notifier publishes domain events after a mutation has been applied.
// Publication never fails the operation; errors are only logged.
type notifier struct {
	publisher eventbus.EventPublisher
	logger    *slog.Logger
}

func (n notifier) publish(ctx context.Context, key string, event eventbus.Event) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.Publish(ctx, key, event); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish event",
			"event_type", event.GetType(),
			"key", key,
			"error", err,
		)
	}
}
