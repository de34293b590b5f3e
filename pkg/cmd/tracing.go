package cmd

import (
	"context"
	"fmt"

	"github.com/dukex/contractflow/pkg/otelhelper"
	"go.opentelemetry.io/otel/trace"
)

// NewTracing returns the tracer for serviceName and a shutdown function that
// flushes pending spans. When disabled, the tracer is a no-op.
//
// nolint:ireturn // Returning interface is intentional for OpenTelemetry tracing
func NewTracing(ctx context.Context, enabled bool, serviceName string) (trace.Tracer, func(context.Context) error, error) {
	if !enabled {
		return otelhelper.NoopTracer(), func(context.Context) error { return nil }, nil
	}

	tracer, shutdown, err := otelhelper.NewTracer(ctx, serviceName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	return tracer, shutdown, nil
}
