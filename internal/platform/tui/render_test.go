package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/msglog"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "##..", core.RGB{R: 130, G: 110, B: 50})
	s.Set(4, 0, '@', core.RGB{R: 255, G: 255, B: 255})
	s.DrawText(0, 1, "abc", core.RGB{R: 1, G: 2, B: 3})

	got := ansi.Strip(RenderScreen(s, NewStyles()))
	expected := "##..@ \nabc   "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestStylesCache(t *testing.T) {
	st := NewStyles()
	c := core.RGB{R: 10, G: 20, B: 30}
	st.Foreground(c)
	st.Foreground(c)
	if len(st.fg) != 1 {
		t.Errorf("cache holds %d styles, expected 1", len(st.fg))
	}
}

func TestRenderBar(t *testing.T) {
	fill, empty := core.RGB{R: 255}, core.RGB{R: 127}

	tests := []struct {
		value, maximum int
		label          string
	}{
		{100, 100, "HP: 100/100"},
		{25, 100, "HP: 25/100"},
		{0, 100, "HP: 0/100"},
		{5, 0, "HP: 5/0"},
	}

	for _, tc := range tests {
		got := ansi.Strip(RenderBar("HP", tc.value, tc.maximum, barWidth, fill, empty))
		if ansi.StringWidth(got) != barWidth {
			t.Errorf("RenderBar(%d/%d) width = %d, expected %d", tc.value, tc.maximum, ansi.StringWidth(got), barWidth)
		}
		if !strings.Contains(got, tc.label) {
			t.Errorf("RenderBar(%d/%d) = %q, expected label %q", tc.value, tc.maximum, got, tc.label)
		}
	}
}

func TestRenderMessages(t *testing.T) {
	lines := []msglog.Message{
		{Text: "first", Color: core.RGB{R: 255}},
		{Text: "second", Color: core.RGB{G: 255}},
	}
	got := ansi.Strip(RenderMessages(lines, NewStyles()))
	if got != "first\nsecond" {
		t.Errorf("RenderMessages() = %q, expected %q", got, "first\nsecond")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abcdef", 4, "abcdef"},
		{"", 4, "  "},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
