// Package msglog is the bounded, word-wrapping message log shown under the map.
package msglog

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/delve/internal/core"
)

// Message is one line of colored text.
type Message struct {
	Text  string
	Color core.RGB
}

// Log keeps the most recent Height wrapped lines.
type Log struct {
	X      int
	Width  int
	Height int

	lines []Message
}

// New creates an empty log drawn at column x.
func New(x, width, height int) *Log {
	return &Log{X: x, Width: width, Height: height}
}

// Add wraps m to the log width and appends each line, dropping the oldest
// lines once the log is full.
func (l *Log) Add(m Message) {
	for _, line := range wrap(m.Text, l.Width) {
		if l.Height > 0 && len(l.lines) >= l.Height {
			l.lines = l.lines[1:]
		}
		l.lines = append(l.lines, Message{Text: line, Color: m.Color})
	}
}

// Lines returns the buffered lines, oldest first.
func (l *Log) Lines() []Message {
	return l.lines
}

// Len returns the number of buffered lines.
func (l *Log) Len() int {
	return len(l.lines)
}

func wrap(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	raw := strings.Split(ansi.Wrap(text, width, ""), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
