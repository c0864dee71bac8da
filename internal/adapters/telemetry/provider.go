package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hubdeploy/internal/core/ports"
)

// OTelTracer implements ports.Tracer using OpenTelemetry. Progress writes on
// its spans are batched and forwarded to the configured reporter.
type OTelTracer struct {
	tracer   trace.Tracer
	reporter ports.Reporter
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{
		tracer: otel.Tracer(name),
	}
}

// WithReporter sets the reporter progress output is forwarded to.
// Must be called before the first Start.
func (t *OTelTracer) WithReporter(r ports.Reporter) *OTelTracer {
	t.reporter = r
	return t
}

// Start creates a new span. When a reporter is configured, data written to
// the span streams to it, batched for UI responsiveness. Delivery happens on
// the flush path, so a span's log lines always reach the reporter before its
// completion event.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)

	var batcher *Batcher
	if t.reporter != nil {
		runID := span.SpanContext().SpanID().String()
		reporter := t.reporter
		batcher = NewBatcher(0, 0, func(data []byte) {
			reporter.OnDeployLog(runID, data)
		})
	}

	return ctx, &OTelSpan{span: span, batcher: batcher}
}

// OTelSpan implements ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *Batcher
}

// End completes the span after flushing pending progress output.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError records an error and marks the span failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer. With a reporter attached output streams through
// the batcher; otherwise it lands on the span as a log event.
func (s *OTelSpan) Write(p []byte) (int, error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
