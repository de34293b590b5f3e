package otelhelper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpan_SetError(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("test")

	_, span := StartSpan(t.Context(), tracer, "contract.advance", attribute.String(ContractIDKey, "ct-1"))
	SetError(span, errors.New("illegal transition"), attribute.String(StatusKey, "Locked"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	got := ended[0]
	assert.Equal(t, "contract.advance", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "illegal transition", got.Status().Description)
	assert.Contains(t, got.Attributes(), attribute.String(ContractIDKey, "ct-1"))

	var names []string
	for _, e := range got.Events() {
		names = append(names, e.Name)
	}

	assert.Contains(t, names, "error_occurred")
}

func TestNoopTracer(t *testing.T) {
	t.Parallel()

	_, span := StartSpan(t.Context(), NoopTracer(), "blueprint.create")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.False(t, span.IsRecording())
}
