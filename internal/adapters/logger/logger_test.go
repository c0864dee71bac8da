package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"hubdeploy/internal/adapters/logger"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. NO_COLOR=1 keeps the output free of ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{name: "simple message", msg: "some message", want: "some message\n"},
		{name: "empty message", msg: "", want: "\n"},
		{name: "multiline message", msg: "line1\nline2", want: "line1\nline2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")
	assert.Equal(t, "! some warning\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	t.Run("nil is ignored", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Error(os.ErrPermission)
		assert.Equal(t, "✗ Error: permission denied\n", buf.String())
	})

	t.Run("stdlib wrap chain stays one line", func(t *testing.T) {
		inner := errors.New("connection refused")
		outer := fmt.Errorf("failed to initialize service: %w", inner)

		lg, buf := newTestLogger(t)
		lg.Error(outer)
		assert.Equal(t, "✗ Error: failed to initialize service: connection refused\n", buf.String())
	})

	t.Run("zerr chain renders cause tree", func(t *testing.T) {
		err := zerr.Wrap(
			zerr.Wrap(
				errors.New("database connection failed"),
				"failed to load user data",
			),
			"failed to process request",
		)

		lg, buf := newTestLogger(t)
		lg.Error(err)

		out := buf.String()
		assert.Contains(t, out, "✗ Error: failed to process request")
		assert.Contains(t, out, "  Caused by:")
		assert.Contains(t, out, "    → failed to load user data")
		assert.Contains(t, out, "    → database connection failed")
	})
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("structured message")
	out := buf.String()
	assert.Contains(t, out, `"msg":"structured message"`)
	assert.Contains(t, out, `"level":"INFO"`)

	buf.Reset()
	lg.Error(errors.New("boom"))
	out = buf.String()
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"error":"boom"`)

	// Switching back restores pretty output.
	buf.Reset()
	lg.SetJSON(false)
	lg.Info("plain again")
	assert.Equal(t, "plain again\n", buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)
	require.NotPanics(t, func() {
		lg.SetOutput(nil)
	})
}
