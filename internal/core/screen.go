package core

import "strings"

// Cell is one character position of the screen buffer.
type Cell struct {
	Rune  rune
	Color RGB
}

var blankCell = Cell{Rune: ' ', Color: defaultRGB[ColorWhite]}

// Screen is a colored character buffer the level is drawn into. The CLI
// prints String(); the TUI styles each run of equal color.
// Cells are stored row-major in one slice.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank width×height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height, cells: make([]Cell, width*height)}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the dimensions. Cells inside both the old and new bounds
// keep their content; new cells are blank.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	next := NewScreen(width, height)
	for y := range min(s.height, height) {
		for x := range min(s.width, width) {
			next.cells[y*width+x] = s.cells[y*s.width+x]
		}
	}
	*s = *next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set places r in color c at (x, y). Out-of-bounds writes are dropped.
func (s *Screen) Set(x, y int, r rune, c RGB) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the buffer.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text left to right from (x, y), clipped at the edges.
func (s *Screen) DrawText(x, y int, text string, c RGB) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, c)
	}
}

// Row returns row y without colors. Rows outside the buffer are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns all rows joined by newlines, without colors.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
