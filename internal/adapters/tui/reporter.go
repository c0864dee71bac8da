package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hubdeploy/internal/adapters/telemetry"
	"hubdeploy/internal/core/ports"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter wraps the Bubble Tea model as a ports.Reporter.
type Reporter struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewReporter creates a new TUI reporter.
func NewReporter(model *Model, opts ...tea.ProgramOption) *Reporter {
	program := tea.NewProgram(model, opts...)
	return &Reporter{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Reporter) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			// Context cancellation (SIGTERM or a finished session) is a
			// normal end, same as quitting with q or ctrl+c.
			err = nil
		}
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Reporter) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Reporter) Wait() error {
	return <-r.errCh
}

// OnDeployStart forwards deploy start events to the TUI.
func (r *Reporter) OnDeployStart(runID, name string, startTime time.Time) {
	r.program.Send(telemetry.MsgDeployStart{
		RunID:     runID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnDeployLog forwards deploy progress output to the TUI.
func (r *Reporter) OnDeployLog(runID string, data []byte) {
	r.program.Send(telemetry.MsgDeployLog{
		RunID: runID,
		Data:  data,
	})
}

// OnDeployComplete forwards deploy completion events to the TUI.
func (r *Reporter) OnDeployComplete(runID string, endTime time.Time, err error) {
	r.program.Send(telemetry.MsgDeployComplete{
		RunID:   runID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Reporter) Program() *tea.Program {
	return r.program
}
