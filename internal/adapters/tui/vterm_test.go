package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hubdeploy/internal/adapters/tui"
)

func TestVterm_Write(t *testing.T) {
	t.Run("write at bottom sticks to bottom", func(t *testing.T) {
		vt := tui.NewVterm()
		vt.SetHeight(5)

		_, err := vt.Write([]byte("line1\nline2\nline3\nline4\nline5\nline6"))
		require.NoError(t, err)

		assert.Equal(t, vt.MaxOffset(), vt.Offset)
	})

	t.Run("write while scrolled up stays scrolled", func(t *testing.T) {
		vt := tui.NewVterm()
		vt.SetHeight(5)

		_, _ = vt.Write([]byte("1\n2\n3\n4\n5\n6\n"))
		vt.Offset = 0 // Scroll to top

		_, err := vt.Write([]byte("7\n8\n"))
		require.NoError(t, err)

		assert.Equal(t, 0, vt.Offset)
	})
}

func TestVterm_SetHeight(t *testing.T) {
	vt := tui.NewVterm()
	_, _ = vt.Write([]byte("1\n2\n3\n4\n5\n6\n7\n8\n9\n10"))

	// Stick to bottom if already at bottom
	vt.Offset = vt.MaxOffset()
	vt.SetHeight(5)
	assert.Equal(t, 5, vt.Height)
	assert.Equal(t, vt.MaxOffset(), vt.Offset)

	// Shrinking while scrolled up clamps the offset
	vt.Offset = 0
	vt.SetHeight(3)
	assert.Equal(t, 0, vt.Offset)

	// Height is never below one
	vt.SetHeight(0)
	assert.Equal(t, 1, vt.Height)
}

func TestVterm_View(t *testing.T) {
	vt := tui.NewVterm()
	vt.SetWidth(40)
	vt.SetHeight(3)

	_, _ = vt.Write([]byte("alpha\nbeta\ngamma\ndelta\n"))

	view := vt.View()
	lines := strings.Split(view, "\n")
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, view, "delta")
	assert.NotContains(t, view, "alpha")
}

func TestVterm_Update_Scrolling(t *testing.T) {
	vt := tui.NewVterm()
	vt.SetHeight(2)
	_, _ = vt.Write([]byte("1\n2\n3\n4\n5\n6\n"))

	vt.Offset = vt.MaxOffset()

	// home jumps to the top
	_, _ = vt.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, vt.Offset)

	// pgdown moves a page
	_, _ = vt.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, vt.Offset)

	// end jumps to the bottom
	_, _ = vt.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, vt.MaxOffset(), vt.Offset)

	// pgup never scrolls past the top
	_, _ = vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	_, _ = vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	_, _ = vt.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.GreaterOrEqual(t, vt.Offset, 0)
}

func TestVterm_SetWidth(t *testing.T) {
	vt := tui.NewVterm()

	vt.SetWidth(80)
	assert.Equal(t, 80, vt.Width)

	// Width is never below one
	vt.SetWidth(0)
	assert.Equal(t, 1, vt.Width)
}
