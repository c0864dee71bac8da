package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"hubdeploy/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to forward span lifecycle events
// to a Reporter. Registered on the tracer provider so every deploy span
// reaches the UI without the engine knowing about rendering.
type Bridge struct {
	reporter ports.Reporter
}

// NewBridge returns a new Bridge.
func NewBridge(reporter ports.Reporter) *Bridge {
	return &Bridge{
		reporter: reporter,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.reporter == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.reporter.OnDeployStart(
		sc.SpanID().String(),
		s.Name(),
		s.StartTime(),
	)
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.reporter == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "deploy failed"
		}
		err = errors.New(desc)
	}

	b.reporter.OnDeployComplete(
		sc.SpanID().String(),
		s.EndTime(),
		err,
	)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
