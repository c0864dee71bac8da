// Package linear provides a line-oriented progress reporter for CI and
// non-interactive environments.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"hubdeploy/internal/ui/output"
)

// Reporter implements ports.Reporter with chronological, prefixed lines.
// Progress output goes to stdout; lifecycle chrome goes to stderr.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	runs    map[string]*runState
	buffers map[string]*bytes.Buffer

	stopOnce sync.Once
	done     chan struct{}
}

type runState struct {
	name      string
	startTime time.Time
}

// NewReporter creates a linear Reporter. Nil writers fall back to the
// process streams.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Reporter{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewANSI(stderr),
		runs:    make(map[string]*runState),
		buffers: make(map[string]*bytes.Buffer),
		done:    make(chan struct{}),
	}
}

// Start is a no-op; the reporter writes synchronously.
func (r *Reporter) Start(_ context.Context) error {
	return nil
}

// Stop flushes remaining buffers and releases Wait. Safe to call more than
// once.
func (r *Reporter) Stop() error {
	r.mu.Lock()
	for runID := range r.buffers {
		r.flushBufferLocked(runID)
	}
	r.mu.Unlock()

	r.stopOnce.Do(func() {
		close(r.done)
	})
	return nil
}

// Wait blocks until Stop is called. Watch mode relies on this to keep the
// reporter goroutine alive between deploys.
func (r *Reporter) Wait() error {
	<-r.done
	return nil
}

// OnDeployStart prints a start line.
func (r *Reporter) OnDeployStart(runID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[runID] = &runState{
		name:      name,
		startTime: startTime,
	}
	r.buffers[runID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s deploying...\n", prefix)
}

// OnDeployLog buffers output and prints complete lines with the run prefix.
func (r *Reporter) OnDeployLog(runID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[runID]
	if !ok {
		return
	}

	buf := r.buffers[runID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Partial line stays buffered until more data or a flush.
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[runID] = rest
			}
			break
		}
		r.printLineLocked(run.name, line)
	}
}

// OnDeployComplete flushes the run's buffer and prints the outcome.
func (r *Reporter) OnDeployComplete(runID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[runID]
	if !ok {
		return
	}

	r.flushBufferLocked(runID)

	duration := endTime.Sub(run.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", run.name)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %s: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s done in %s\n", prefix, symbol, duration)
	}

	delete(r.runs, runID)
	delete(r.buffers, runID)
}

// flushBufferLocked prints any partial line left for a run. Callers hold mu.
func (r *Reporter) flushBufferLocked(runID string) {
	run, ok := r.runs[runID]
	if !ok {
		return
	}

	buf := r.buffers[runID]
	if buf.Len() > 0 {
		r.printLineLocked(run.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints one line with the run prefix. Callers hold mu.
func (r *Reporter) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, string(line))
}
