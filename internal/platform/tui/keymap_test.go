package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/delve/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveNorth},
		{"k", runeKey('k'), core.ActionMoveNorth},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMoveSouth},
		{"j", runeKey('j'), core.ActionMoveSouth},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveWest},
		{"h", runeKey('h'), core.ActionMoveWest},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveEast},
		{"l", runeKey('l'), core.ActionMoveEast},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionWait},
		{"dot", runeKey('.'), core.ActionWait},
		{"g", runeKey('g'), core.ActionUse},
		{">", runeKey('>'), core.ActionDescend},
		{"m", runeKey('m'), core.ActionReveal},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 10 {
		t.Errorf("FullHelp() lists %d bindings, expected 10", total)
	}
}
