package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/msglog"
)

// barWidth is the width of the HP bar in the status panel.
const barWidth = 20

// Styles caches one foreground style per RGB color. A Styles value belongs to
// a single model and is not safe for concurrent use.
type Styles struct {
	fg map[core.RGB]lipgloss.Style
}

// NewStyles creates an empty style cache.
func NewStyles() *Styles {
	return &Styles{fg: make(map[core.RGB]lipgloss.Style)}
}

// Foreground returns a style drawing text in c.
func (st *Styles) Foreground(c core.RGB) lipgloss.Style {
	s, ok := st.fg[c]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		st.fg[c] = s
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, st *Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.Foreground(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderBar draws a labelled bar: the filled part in fill, the rest in empty,
// with "name: value/maximum" centered on top.
func RenderBar(name string, value, maximum, width int, fill, empty core.RGB) string {
	filled := 0
	if maximum > 0 {
		filled = core.Clamp(value*width/maximum, 0, width)
	}

	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	text := []rune(centerText(label, width))
	if len(text) > width {
		text = text[:width]
	}
	for len(text) < width {
		text = append(text, ' ')
	}

	fillStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(fill.Hex())).
		Foreground(lipgloss.Color("#ffffff"))
	emptyStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(empty.Hex())).
		Foreground(lipgloss.Color("#ffffff"))

	return fillStyle.Render(string(text[:filled])) + emptyStyle.Render(string(text[filled:]))
}

// RenderMessages draws the message log, one colored line per message.
func RenderMessages(lines []msglog.Message, st *Styles) string {
	out := make([]string, len(lines))
	for i, m := range lines {
		out[i] = st.Foreground(m.Color).Render(m.Text)
	}
	return strings.Join(out, "\n")
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
