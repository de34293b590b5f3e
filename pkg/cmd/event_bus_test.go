package cmd

import (
	"log/slog"
	"testing"

	"github.com/dukex/contractflow/pkg/channels/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventBus(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{"", EventBusGoChannel} {
		bus, err := NewEventBus(provider, "", slog.Default())
		require.NoError(t, err, provider)
		require.NotNil(t, bus)
		assert.NoError(t, bus.Close())
	}
}

func TestNewEventBus_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewEventBus("rabbitmq", "", slog.Default())
	require.ErrorIs(t, err, ErrUnsupportedEventBus)

	_, err = NewEventBus(EventBusKafka, " , ", slog.Default())
	require.ErrorIs(t, err, kafka.ErrNoBrokers)
}

func TestNewTracing_Disabled(t *testing.T) {
	t.Parallel()

	tracer, shutdown, err := NewTracing(t.Context(), false, "contractflow-test")
	require.NoError(t, err)
	require.NotNil(t, tracer)

	_, span := tracer.Start(t.Context(), "noop")
	assert.False(t, span.IsRecording())
	span.End()

	assert.NoError(t, shutdown(t.Context()))
}
