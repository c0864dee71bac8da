// Package output creates termenv outputs with shared color-profile handling.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile picks the color profile for interactive output. NO_COLOR always
// wins and disables styling entirely.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileANSI picks the color profile for non-interactive output, where
// plain ANSI colors are the safest choice. NO_COLOR always wins.
func ProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New wraps w in a termenv.Output using the interactive profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, Profile(), opts...)
}

// NewANSI wraps w in a termenv.Output using the non-interactive profile.
func NewANSI(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return newOutput(w, ProfileANSI(), opts...)
}

func newOutput(w io.Writer, profile termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
