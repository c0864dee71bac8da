package ports

import (
	"context"
	"io"
)

// SpanConfig holds options applied when starting a span.
type SpanConfig struct{}

// SpanOption mutates a SpanConfig.
type SpanOption func(*SpanConfig)

// Tracer creates spans around units of work. Span lifecycle events reach the
// active Reporter through the telemetry bridge, so instrumented code never
// talks to the UI directly.
type Tracer interface {
	// Start begins a span. The returned context carries it for nesting.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span is one traced unit of work. Writes stream progress output to the
// reporter attached to the tracer.
type Span interface {
	io.Writer

	// End completes the span.
	End()

	// RecordError marks the span as failed.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
