package tui

import (
	"github.com/charmbracelet/lipgloss"

	"hubdeploy/internal/ui/style"
)

var (
	runRunningStyle = lipgloss.NewStyle().
			Foreground(style.Copper).
			Bold(true)

	runDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	runErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	durationStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Copper).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Copper).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)
)
