// Package detector picks the output mode for an invocation.
package detector

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode is the rendering mode for progress output.
type Mode string

const (
	// ModeAuto defers to environment detection.
	ModeAuto Mode = "auto"
	// ModeTUI is the interactive full-screen renderer.
	ModeTUI Mode = "tui"
	// ModeLinear is the plain line-oriented renderer.
	ModeLinear Mode = "linear"
)

// Detect returns the mode recommended by the environment. CI and
// non-terminal stdout both demote to linear output.
func Detect() Mode {
	if isCI() || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeLinear
	}
	return ModeTUI
}

// Resolve applies a user-provided flag on top of detection. Unknown values
// fall back to detection.
func Resolve(userFlag string) Mode {
	switch strings.ToLower(strings.TrimSpace(userFlag)) {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return Detect()
	}
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}
