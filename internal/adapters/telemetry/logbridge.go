package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"hubdeploy/internal/core/ports"
)

// LoggerBridge implements sdktrace.SpanProcessor and mirrors span lifecycle
// into the structured log. Enabled by --trace so non-interactive runs keep
// a timing record.
type LoggerBridge struct {
	logger ports.Logger
}

// NewLoggerBridge returns a new LoggerBridge.
func NewLoggerBridge(logger ports.Logger) *LoggerBridge {
	return &LoggerBridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *LoggerBridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil {
		return
	}
	b.logger.Info(fmt.Sprintf("trace: %s started", s.Name()))
}

// OnEnd is called when a span ends.
func (b *LoggerBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)

	if s.Status().Code == codes.Error {
		b.logger.Warn(fmt.Sprintf("trace: %s failed after %s: %s", s.Name(), elapsed, s.Status().Description))
		return
	}
	b.logger.Info(fmt.Sprintf("trace: %s finished in %s", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (b *LoggerBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LoggerBridge) Shutdown(_ context.Context) error {
	return nil
}
