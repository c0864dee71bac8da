// Package style provides the shared color palette and icons used across the
// CLI's rendered output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Copper = lipgloss.Color("#C2702D")
	Slate  = lipgloss.Color("#64748B")
	Ink    = lipgloss.Color("#111827")
	Mist   = lipgloss.Color("#F3F4F6")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
	White  = lipgloss.Color("#FFFFFF")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)
