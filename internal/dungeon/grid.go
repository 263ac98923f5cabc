// Package dungeon builds levels: it carves rooms and corridors into a tile
// grid, fills rooms with depth-scaled monsters and items, and orchestrates the
// transition to the next floor.
package dungeon

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrOutOfBounds is the panic value (wrapped) when carving leaves the grid.
var ErrOutOfBounds = errors.New("dungeon: tile out of bounds")

// Grid stores per-tile flags in flat row-major slices.
// A new grid is solid rock: nothing walkable, transparent or explored.
type Grid struct {
	W, H int

	walkable    []bool
	transparent []bool
	explored    []bool
}

// NewGrid creates a solid w×h grid.
func NewGrid(w, h int) *Grid {
	n := w * h
	return &Grid{
		W:           w,
		H:           h,
		walkable:    make([]bool, n),
		transparent: make([]bool, n),
		explored:    make([]bool, n),
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Walkable reports whether (x, y) can be walked on. Out-of-bounds is false.
func (g *Grid) Walkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.walkable[g.index(x, y)]
}

// Transparent reports whether (x, y) lets light through.
func (g *Grid) Transparent(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.transparent[g.index(x, y)]
}

// Explored reports whether the player has seen (x, y).
func (g *Grid) Explored(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.explored[g.index(x, y)]
}

// SetExplored marks (x, y) as seen. Out-of-bounds is ignored.
func (g *Grid) SetExplored(x, y int) {
	if g.InBounds(x, y) {
		g.explored[g.index(x, y)] = true
	}
}

// open makes (x, y) walkable and transparent. Panics outside the grid.
func (g *Grid) open(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, x, y, g.W, g.H))
	}
	i := g.index(x, y)
	g.walkable[i] = true
	g.transparent[i] = true
}

// WalkableCount returns the number of walkable tiles.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, w := range g.walkable {
		if w {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		W:           g.W,
		H:           g.H,
		walkable:    slices.Clone(g.walkable),
		transparent: slices.Clone(g.transparent),
		explored:    slices.Clone(g.explored),
	}
}

// Equal reports whether two grids have the same size and tile flags.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	return slices.Equal(g.walkable, other.walkable) &&
		slices.Equal(g.transparent, other.transparent) &&
		slices.Equal(g.explored, other.explored)
}

// String dumps the grid with '#' for rock and '.' for floor.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			if g.walkable[g.index(x, y)] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
