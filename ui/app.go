package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelys/disktop/engine"
	"github.com/avelys/disktop/history"
	"github.com/avelys/disktop/model"
)

const maxZoom = 10

type tickMsg time.Time

type collectMsg struct {
	snap *model.Snapshot
}

// Model is the bubbletea model.
type Model struct {
	engine   *engine.Engine
	interval time.Duration
	width    int
	height   int

	snap *model.Snapshot

	// Display state, mutated only here; the renderers just read it.
	mode     model.DisplayMode
	selected int
	zoom     int
	paused   bool

	// Save feedback, shown briefly in the status bar.
	saveMsg     string
	saveMsgTime time.Time
}

// NewModel creates a new TUI model.
func NewModel(eng *engine.Engine, interval time.Duration, mode model.DisplayMode) Model {
	return Model{engine: eng, interval: interval, mode: mode, zoom: 1}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), collectOnce(m.engine))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func collectOnce(eng *engine.Engine) tea.Cmd {
	return func() tea.Msg {
		return collectMsg{snap: eng.Tick()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.mode = m.mode.Toggle()
		case "j", "down":
			if m.snap != nil && m.selected < len(m.snap.Disks)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "+", "=":
			if m.zoom < maxZoom {
				m.zoom++
			}
		case "-":
			if m.zoom > 1 {
				m.zoom--
			}
		case "p":
			m.paused = !m.paused
			if !m.paused {
				return m, tea.Batch(tick(m.interval), collectOnce(m.engine))
			}
		case "ctrl+d":
			// Persist the current view as the startup default
			if err := saveDefaultMode(m.mode); err != nil {
				m.saveMsg = fmt.Sprintf("Error: %v", err)
			} else {
				m.saveMsg = "Default view: " + m.mode.String()
			}
			m.saveMsgTime = time.Now()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), collectOnce(m.engine))
	case collectMsg:
		if !m.paused {
			m.snap = msg.snap
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.snap == nil {
		return dimStyle.Render("Collecting first sample...")
	}

	_, detailW := layoutWidths(m.width)
	view := history.View{Width: detailW, Zoom: m.zoom}

	panelH := m.height - 1
	if panelH < 4 {
		panelH = 4
	}
	content := RenderDiskPanel(m.snap, m.engine.History, m.engine.Processes(),
		m.mode, m.selected, view, m.width, panelH, BorderStyle)

	return content + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	bar := helpStyle.Render("a:" + m.mode.Toggle().String() + "  j/k:select  +/-:zoom  p:pause  ctrl+d:set default  q:quit")
	if m.paused {
		bar += "  " + alertStyle.Render("[PAUSED]")
	}
	if m.saveMsg != "" && time.Since(m.saveMsgTime) < 5*time.Second {
		bar += "  " + healthyStyle.Render(m.saveMsg)
	}
	return bar
}
