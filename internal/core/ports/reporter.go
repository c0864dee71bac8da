package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

// Reporter is the abstraction for progress rendering.
// It decouples the deploy pipeline from presentation, letting the same event
// stream drive either the interactive watch TUI or linear CI-style logs.
type Reporter interface {
	// Start initializes the reporter. Asynchronous reporters launch their
	// event loop here.
	Start(ctx context.Context) error

	// Stop signals the reporter to flush buffered output and shut down.
	// It is safe to call more than once.
	Stop() error

	// Wait blocks until the reporter has fully terminated.
	Wait() error

	// OnDeployStart is called when a deploy attempt begins.
	// runID uniquely identifies the attempt; name is its display label.
	OnDeployStart(runID, name string, startTime time.Time)

	// OnDeployLog is called when a deploy attempt emits progress output.
	// data may contain partial lines.
	OnDeployLog(runID string, data []byte)

	// OnDeployComplete is called when a deploy attempt finishes.
	// err is nil on success.
	OnDeployComplete(runID string, endTime time.Time, err error)
}
