package services

import (
	"log/slog"

	"github.com/dukex/contractflow/pkg/eventbus"
	"github.com/dukex/contractflow/pkg/log"
	"github.com/dukex/contractflow/pkg/otelhelper"
	"github.com/dukex/contractflow/pkg/store"
	"go.opentelemetry.io/otel/trace"
)

// Session owns the blueprint and contract stores for one running process and
// the queue that serializes writes to both. Construct it once and pass it by
// reference.
type Session struct {
	Blueprints *Blueprint
	Contracts  *Contract

	queue *Queue
}

type sessionConfig struct {
	publisher        eventbus.EventPublisher
	tracer           trace.Tracer
	logger           *slog.Logger
	blueprintOptions []store.BlueprintOption
	contractOptions  []store.ContractOption
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

// WithPublisher sets where domain events are published. Without it no events are sent.
func WithPublisher(publisher eventbus.EventPublisher) SessionOption {
	return func(c *sessionConfig) {
		c.publisher = publisher
	}
}

// WithTracer sets the tracer for service spans. Defaults to a no-op tracer.
func WithTracer(tracer trace.Tracer) SessionOption {
	return func(c *sessionConfig) {
		c.tracer = tracer
	}
}

// WithLogger sets the logger. Defaults to the "services" module logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithBlueprintStoreOptions passes options through to the blueprint store.
func WithBlueprintStoreOptions(opts ...store.BlueprintOption) SessionOption {
	return func(c *sessionConfig) {
		c.blueprintOptions = append(c.blueprintOptions, opts...)
	}
}

// WithContractStoreOptions passes options through to the contract store.
func WithContractStoreOptions(opts ...store.ContractOption) SessionOption {
	return func(c *sessionConfig) {
		c.contractOptions = append(c.contractOptions, opts...)
	}
}

// NewSession creates empty stores and starts the write queue.
func NewSession(opts ...SessionOption) *Session {
	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.tracer == nil {
		cfg.tracer = otelhelper.NoopTracer()
	}

	if cfg.logger == nil {
		cfg.logger = log.WithModule("services")
	}

	blueprints := store.NewBlueprintStore(cfg.blueprintOptions...)
	contracts := store.NewContractStore(blueprints, cfg.contractOptions...)
	queue := NewQueue()

	return &Session{
		Blueprints: NewBlueprint(blueprints, queue, cfg.publisher, cfg.tracer, cfg.logger),
		Contracts:  NewContract(contracts, queue, cfg.publisher, cfg.tracer, cfg.logger),
		queue:      queue,
	}
}

// HealthCheck reports whether the session still accepts mutations.
func (s *Session) HealthCheck() (string, bool) {
	select {
	case <-s.queue.closing:
		return "Mutation queue is closed", false
	default:
		return "Session is healthy", true
	}
}

// Close stops the write queue. Reads keep working; mutations fail with ErrQueueClosed.
func (s *Session) Close() {
	s.queue.Close()
}
