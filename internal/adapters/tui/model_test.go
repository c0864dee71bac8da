package tui_test

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"hubdeploy/internal/adapters/telemetry"
	"hubdeploy/internal/adapters/tui"
)

func TestModel_Update(t *testing.T) {
	const (
		runID1 = "run-1"
		runID2 = "run-2"
		runID3 = "run-3"
	)

	// Helper to initialize a model with three runs already started
	initModel := func(_ *testing.T) *tui.Model {
		model := tui.NewModel(nil)
		m := &model
		for i, id := range []string{runID1, runID2, runID3} {
			m, _ = updateModel(m, telemetry.MsgDeployStart{
				RunID: id,
				Name:  "file-" + string(rune('a'+i)) + ".groovy",
			})
		}
		return m
	}

	t.Run("Window Resizing", func(t *testing.T) {
		m := initModel(t)

		width, height := 100, 50
		updatedModel, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
		m = updatedModel.(*tui.Model)

		// runListWidthRatio = 0.3, logPaneBorderWidth = 4
		expectedListWidth := int(float64(width) * 0.3)
		expectedLogWidth := width - expectedListWidth - 4

		assert.Equal(t, expectedLogWidth, m.LogWidth, "LogWidth calculation incorrect")
		assert.Equal(t, expectedLogWidth, m.Runs[0].Term.Width, "Run term width not updated")

		// ListHeight depends on header rendering, so we just check it is reasonable
		assert.Positive(t, m.ListHeight, "ListHeight should be positive")
		assert.Less(t, m.ListHeight, height, "ListHeight should be less than total height")
		assert.Positive(t, m.LogHeight, "LogHeight should be positive")
		assert.Equal(t, m.LogHeight, m.Runs[0].Term.Height, "Run term height not updated")
	})

	t.Run("Navigation & Keybindings", func(t *testing.T) {
		t.Run("Selection Navigation", func(t *testing.T) {
			m := initModel(t)
			m.SelectedIdx = 0

			// Move Down (j)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
			assert.Equal(t, 1, m.SelectedIdx)
			assert.False(t, m.FollowMode, "FollowMode should be disabled on manual nav")

			// Move Down (down key)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, 2, m.SelectedIdx)

			// Bounds check (end of list)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyDown})
			assert.Equal(t, 2, m.SelectedIdx)

			// Move Up (k)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
			assert.Equal(t, 1, m.SelectedIdx)

			// Move Up (up key)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
			assert.Equal(t, 0, m.SelectedIdx)

			// Bounds check (start of list)
			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyUp})
			assert.Equal(t, 0, m.SelectedIdx)
		})

		t.Run("Quit Commands", func(t *testing.T) {
			m := initModel(t)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
			assert.Equal(t, tea.Quit(), cmd(), "q should return tea.Quit")

			_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			assert.Equal(t, tea.Quit(), cmd(), "ctrl+c should return tea.Quit")
		})

		t.Run("Follow Mode (Esc)", func(t *testing.T) {
			m := initModel(t)

			// Finish runs 1 and 3; run 2 stays running
			m, _ = updateModel(m, telemetry.MsgDeployComplete{RunID: runID1})
			m, _ = updateModel(m, telemetry.MsgDeployComplete{RunID: runID3})

			// Move selection away manually
			m.SelectedIdx = 0
			m.FollowMode = false

			m, _ = updateModel(m, tea.KeyMsg{Type: tea.KeyEsc})

			assert.True(t, m.FollowMode, "Esc should enable FollowMode")
			assert.Equal(t, 1, m.SelectedIdx, "Esc should jump to the running deploy (index 1)")
		})
	})

	t.Run("Telemetry Integration", func(t *testing.T) {
		t.Run("MsgDeployStart appends a run", func(t *testing.T) {
			m := tui.NewModel(nil)
			started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

			updatedModel, _ := m.Update(telemetry.MsgDeployStart{
				RunID:     runID1,
				Name:      "thermostat.groovy",
				StartTime: started,
			})
			got := updatedModel.(*tui.Model)

			require.Len(t, got.Runs, 1)
			assert.Equal(t, "thermostat.groovy", got.Runs[0].Name)
			assert.Equal(t, tui.StatusRunning, got.Runs[0].Status)
			assert.Equal(t, started, got.Runs[0].Started)
			assert.Equal(t, got.Runs[0], got.RunMap[runID1], "RunMap should map runID")
		})

		t.Run("MsgDeployStart follows the newest run", func(t *testing.T) {
			m := initModel(t)
			m.FollowMode = true

			m, _ = updateModel(m, telemetry.MsgDeployStart{RunID: "run-4", Name: "d.groovy"})

			assert.Equal(t, 3, m.SelectedIdx, "FollowMode should switch selection to the new run")
			assert.Equal(t, "run-4", m.ActiveRunID)
		})

		t.Run("MsgDeployLog writes to the run terminal", func(t *testing.T) {
			m := initModel(t)

			m, _ = updateModel(m, telemetry.MsgDeployLog{
				RunID: runID1,
				Data:  []byte("Loaded: Thermostat Manager (1284 chars)\n"),
			})

			assert.Positive(t, m.RunMap[runID1].Term.UsedHeight(), "Term should have data")
		})

		t.Run("MsgDeployComplete success", func(t *testing.T) {
			m := initModel(t)
			started := m.Runs[0].Started

			m, _ = updateModel(m, telemetry.MsgDeployComplete{
				RunID:   runID1,
				EndTime: started.Add(1500 * time.Millisecond),
			})

			requireRunStatus(t, m, runID1, tui.StatusDone)
		})

		t.Run("MsgDeployComplete error", func(t *testing.T) {
			m := initModel(t)

			m, _ = updateModel(m, telemetry.MsgDeployComplete{
				RunID: runID2,
				Err:   zerr.New("hub rejected source"),
			})

			requireRunStatus(t, m, runID2, tui.StatusError)
		})

		t.Run("MsgDeployComplete records duration", func(t *testing.T) {
			m := tui.NewModel(nil)
			started := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

			updated, _ := m.Update(telemetry.MsgDeployStart{RunID: runID1, Name: "a.groovy", StartTime: started})
			got := updated.(*tui.Model)
			updated, _ = got.Update(telemetry.MsgDeployComplete{RunID: runID1, EndTime: started.Add(2 * time.Second)})
			got = updated.(*tui.Model)

			assert.Equal(t, 2*time.Second, got.Runs[0].Took)
		})

		t.Run("MsgDeployComplete for unknown run is ignored", func(t *testing.T) {
			m := initModel(t)

			assert.NotPanics(t, func() {
				_, _ = m.Update(telemetry.MsgDeployComplete{RunID: "never-started"})
			})
		})
	})
}

// Helpers.

func updateModel(m *tui.Model, msg tea.Msg) (*tui.Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(*tui.Model), cmd
}

func requireRunStatus(t *testing.T, m *tui.Model, runID string, expected tui.RunStatus) {
	t.Helper()
	node, ok := m.RunMap[runID]
	require.True(t, ok, "Run %s should exist in RunMap", runID)
	assert.Equal(t, expected, node.Status, "Run status mismatch")
}
