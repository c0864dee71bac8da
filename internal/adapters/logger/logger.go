// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"hubdeploy/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination. Thread-safe; the
// current JSON mode is preserved. A nil writer falls back to stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging. The output destination
// is preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild swaps the underlying handler. Callers must hold mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
