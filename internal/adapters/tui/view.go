package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.runList(),
		m.logPane(),
	)
}

// listHeader is the run list title block. Its height feeds the window size
// math, so View and Update must agree on it.
func (m *Model) listHeader() string {
	h := titleStyle.Render("DEPLOYS") + "\n"
	if m.Header != "" {
		h += durationStyle.Render(m.Header) + "\n"
	}
	return h + "\n"
}

//nolint:gocritic // hugeParam ignored
func (m *Model) runList() string {
	var s strings.Builder

	s.WriteString(m.listHeader())

	if len(m.Runs) == 0 {
		s.WriteString(durationStyle.Render("waiting for changes") + "\n")
		return s.String()
	}

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Runs) {
		end = len(m.Runs)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		run := m.Runs[i]
		s.WriteString(m.renderRunRow(i, run) + "\n")
	}

	return s.String()
}

func (m *Model) renderRunRow(index int, run *RunNode) string {
	icon := getRunIcon(run)
	style := getRunStyle(run)

	// Highlight selected run
	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if run.Status == StatusRunning {
			style = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s", icon, run.Name)
	row := cursor + style.Render(content)
	if run.Took > 0 {
		row += durationStyle.Render(" " + run.Took.Round(time.Millisecond).String())
	}
	return row
}

func getRunIcon(run *RunNode) string {
	switch run.Status {
	case StatusDone:
		return "✓"
	case StatusError:
		return "✗"
	default: // Running
		return "●"
	}
}

func getRunStyle(run *RunNode) lipgloss.Style {
	switch run.Status {
	case StatusDone:
		return runDoneStyle
	case StatusError:
		return runErrorStyle
	default: // Running
		return runRunningStyle
	}
}

//nolint:gocritic // hugeParam ignored
func (m *Model) logPane() string {
	var header string
	var content string

	if node, ok := m.RunMap[m.ActiveRunID]; ok {
		status := " (Following)"
		if !m.FollowMode {
			status = " (Manual)"
		}

		headerStyle := titleStyle
		if node.Status == StatusError {
			headerStyle = failureTitleStyle
		}
		header = headerStyle.Render("LOGS: " + node.Name + status)
		content = node.Term.View()
	} else {
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
	)
}
