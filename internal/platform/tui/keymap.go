package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/delve/internal/core"
)

// KeyMap defines the explorer key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Wait    key.Binding
	Use     key.Binding
	Descend key.Binding
	Reveal  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Use, k.Descend, k.Reveal, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Wait},
		{k.Use, k.Descend, k.Reveal},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns arrow and vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "east"),
		),
		Wait: key.NewBinding(
			key.WithKeys(" ", "."),
			key.WithHelp("space", "wait"),
		),
		Use: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "use item"),
		),
		Descend: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "descend"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "map"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an explorer action.
// Unbound keys map to core.ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionMoveNorth
	case key.Matches(msg, k.Down):
		return core.ActionMoveSouth
	case key.Matches(msg, k.Left):
		return core.ActionMoveWest
	case key.Matches(msg, k.Right):
		return core.ActionMoveEast
	case key.Matches(msg, k.Wait):
		return core.ActionWait
	case key.Matches(msg, k.Use):
		return core.ActionUse
	case key.Matches(msg, k.Descend):
		return core.ActionDescend
	case key.Matches(msg, k.Reveal):
		return core.ActionReveal
	}
	return core.ActionNone
}
