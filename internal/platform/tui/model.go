// Package tui runs the dungeon explorer in a terminal, locally or over SSH.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/msglog"
)

// PanelWidth is the width of the status column; the message log starts there.
const PanelWidth = barWidth + 2

// Model is the Bubble Tea model for exploring the dungeon.
type Model struct {
	explorer *Explorer
	messages *msglog.Log
	screen   *core.Screen
	styles   *Styles
	palette  *core.Palette
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	width    int
	height   int
	err      error
	quitting bool
}

// NewModel creates a model around an explorer. messages must be the log the
// explorer writes to.
func NewModel(explorer *Explorer, messages *msglog.Log, palette *core.Palette, logger *log.Logger) Model {
	if palette == nil {
		palette = core.DefaultPalette()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := explorer.Level().Grid
	return Model{
		explorer: explorer,
		messages: messages,
		screen:   core.NewScreen(g.W, g.H),
		styles:   NewStyles(),
		palette:  palette,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Every mapped key is one turn.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	depth := m.explorer.Depth()
	quit, err := m.explorer.Do(action)
	if err != nil {
		m.logger.Error("explorer failed", "action", action, "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	// A new floor may have a different size.
	if m.explorer.Depth() != depth {
		g := m.explorer.Level().Grid
		m.screen.Resize(g.W, g.H)
	}
	return m, nil
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Explorer returns the underlying explorer.
func (m Model) Explorer() *Explorer {
	return m.explorer
}

// View renders the map, the status panel with the message log, and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.explorer.Draw(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.styles))
	b.WriteString("\n")
	b.WriteString(m.renderPanel())
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderPanel() string {
	p := m.explorer.Player()

	var status strings.Builder
	if p.Fighter != nil {
		status.WriteString(RenderBar("HP", p.Fighter.HP, p.Fighter.MaxHP, barWidth,
			m.palette.Get(core.ColorLightRed), m.palette.Get(core.ColorDarkerRed)))
	}
	status.WriteString("\n")
	status.WriteString(fmt.Sprintf("Dungeon level: %d", m.explorer.Depth()))
	status.WriteString("\n")
	status.WriteString(fmt.Sprintf("Turn %d  XP %d", m.explorer.Turns(), m.explorer.XP()))
	if m.explorer.Dead() {
		status.WriteString("\n")
		status.WriteString(m.styles.Foreground(m.palette.Get(core.ColorRed)).Render("Press q to leave."))
	}

	left := lipgloss.NewStyle().Width(PanelWidth).Render(status.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, RenderMessages(m.messages.Lines(), m.styles))
}

// Run starts a local explorer session on the current terminal.
func Run(explorer *Explorer, messages *msglog.Log, palette *core.Palette, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(explorer, messages, palette, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
