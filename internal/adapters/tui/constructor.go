// Package tui provides the interactive terminal user interface for deploys.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"hubdeploy/internal/ui/output"
)

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Runs:       make([]*RunNode, 0),
		RunMap:     make(map[string]*RunNode),
		AutoScroll: true,
		FollowMode: true,
	}
}

// WithHeader sets a context line rendered under the run list title,
// typically the watched file and its target hub.
func (m Model) WithHeader(header string) Model {
	m.Header = header
	return m
}
