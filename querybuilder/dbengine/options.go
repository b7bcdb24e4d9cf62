package dbengine

import (
	"github.com/domainblocks/ddd-blocks-go/querybuilder"
)

// Logger is the level-based logging contract accepted by the engine.
type Logger = querybuilder.Logger

// ContextualLogger is the context-aware logging contract accepted by the engine.
type ContextualLogger = querybuilder.ContextualLogger

// MetricsCollector is the metrics contract accepted by the engine.
type MetricsCollector = querybuilder.MetricsCollector

// TracingCollector is the tracing contract accepted by the engine.
type TracingCollector = querybuilder.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = querybuilder.SpanContext

// Option defines a functional option for configuring an Engine.
type Option func(*Engine) error

// WithLogger sets the logger for the Engine.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: rows affected and durations (production-safe)
// Warn level: non-critical issues like failed rows-affected lookups
// Error level: failures surfaced by the database driver.
func WithLogger(logger Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Engine.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(e *Engine) error {
		e.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Engine.
// The collector will receive performance and operational metrics including
// query/exec durations and database error counts.
func WithMetrics(collector MetricsCollector) Option {
	return func(e *Engine) error {
		e.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Engine.
// The collector will receive distributed tracing information including
// span creation for query/exec operations, context propagation, and error tracking.
func WithTracing(collector TracingCollector) Option {
	return func(e *Engine) error {
		e.tracingCollector = collector
		return nil
	}
}
