package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hubdeploy/internal/adapters/telemetry"
)

const (
	runListWidthRatio  = 0.3
	logPaneBorderWidth = 4
)

// RunStatus represents the current state of a deploy run.
type RunStatus string

const (
	// StatusRunning indicates the deploy is in flight.
	StatusRunning RunStatus = "Running"
	// StatusDone indicates the deploy completed successfully.
	StatusDone RunStatus = "Done"
	// StatusError indicates the deploy failed.
	StatusError RunStatus = "Error"
)

// RunNode represents a single deploy run in the UI list. In watch mode the
// same file shows up once per save, so runs are keyed by run ID, not name.
type RunNode struct {
	ID      string
	Name    string
	Status  RunStatus
	Term    *Vterm
	Started time.Time
	Took    time.Duration
}

// Model represents the main TUI state.
type Model struct {
	Runs        []*RunNode
	RunMap      map[string]*RunNode
	AutoScroll  bool
	ActiveRunID string
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	LogWidth    int
	LogHeight   int
	FollowMode  bool
	Header      string
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) getSelectedRun() *RunNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Runs) {
		return m.Runs[m.SelectedIdx]
	}
	return nil
}

func (m *Model) updateActiveView() {
	if node := m.getSelectedRun(); node != nil {
		m.ActiveRunID = node.ID

		if m.FollowMode && m.AutoScroll {
			// Stick the log pane to the bottom when we just switched
			maxOff := node.Term.UsedHeight() - node.Term.Height
			if maxOff < 0 {
				maxOff = 0
			}
			node.Term.Offset = maxOff
		}
	}
}

func (m *Model) newRunTerm() *Vterm {
	term := NewVterm()
	// If we know the dimensions, set them immediately
	if m.LogWidth > 0 && m.LogHeight > 0 {
		term.SetWidth(m.LogWidth)
		term.SetHeight(m.LogHeight)
	}
	return term
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Runs)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "esc":
			m.FollowMode = true
			// Jump to the currently running deploy if any.
			for i, r := range m.Runs {
				if r.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()

		default:
			// Forward keys to the active run's terminal if applicable
			if m.ActiveRunID != "" {
				if node, ok := m.RunMap[m.ActiveRunID]; ok {
					node.Term.Update(msg)
				}
			}
		}

	case tea.WindowSizeMsg:
		// Split screen: 30% for the run list, 70% for logs
		listWidth := int(float64(msg.Width) * runListWidthRatio)
		logWidth := msg.Width - listWidth - logPaneBorderWidth // minus margins/borders

		headerHeight := lipgloss.Height(titleStyle.Render("TEST"))
		logHeight := msg.Height - headerHeight

		// Store calculated dimensions for future runs
		m.LogWidth = logWidth
		m.LogHeight = logHeight

		// Calculate ListHeight with full header including newlines
		listInfoHeight := lipgloss.Height(m.listHeader())
		m.ListHeight = msg.Height - listInfoHeight
		m.ensureVisible()

		// Update all terminals
		for _, node := range m.Runs {
			node.Term.SetWidth(logWidth)
			node.Term.SetHeight(logHeight)
		}

	case telemetry.MsgDeployStart:
		node := &RunNode{
			ID:      msg.RunID,
			Name:    msg.Name,
			Status:  StatusRunning,
			Term:    m.newRunTerm(),
			Started: msg.StartTime,
		}
		m.Runs = append(m.Runs, node)
		if m.RunMap == nil {
			m.RunMap = make(map[string]*RunNode)
		}
		m.RunMap[msg.RunID] = node

		// Focus follows activity ONLY if FollowMode is true
		if m.FollowMode {
			m.SelectedIdx = len(m.Runs) - 1
			m.ensureVisible()
			m.updateActiveView()
		}

	case telemetry.MsgDeployLog:
		if node, ok := m.RunMap[msg.RunID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case telemetry.MsgDeployComplete:
		if node, ok := m.RunMap[msg.RunID]; ok {
			if msg.Err != nil {
				node.Status = StatusError
			} else {
				node.Status = StatusDone
			}
			if !node.Started.IsZero() && !msg.EndTime.IsZero() {
				node.Took = msg.EndTime.Sub(node.Started)
			}
		}
	}

	return m, cmd
}
