package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/entity"
)

// Level is one generated floor.
type Level struct {
	Grid  *Grid
	Depth int
	Rooms []core.Rect
}

// NewLevel creates a solid level of the given size at depth.
func NewLevel(w, h, depth int) *Level {
	return &Level{Grid: NewGrid(w, h), Depth: depth}
}

// Render draws the level into a screen buffer: walls, floor, then entities in
// render order. Unexplored tiles are left blank unless revealAll is set.
func (l *Level) Render(s *core.Screen, entities *entity.List, palette *core.Palette, revealAll bool) {
	g := l.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !revealAll && !g.Explored(x, y) {
				continue
			}
			if g.Walkable(x, y) {
				s.Set(x, y, '.', palette.Get(core.ColorLightGround))
			} else {
				s.Set(x, y, '#', palette.Get(core.ColorLightWall))
			}
		}
	}
	if entities == nil {
		return
	}
	for _, e := range entities.DrawOrder() {
		if revealAll || g.Explored(e.X, e.Y) {
			s.Set(e.X, e.Y, e.Glyph, e.Color)
		}
	}
}

// RenderVisible draws what the player can currently see in light colors and
// remembered tiles in dark ones. Entities show only when visible, except
// stairs, which stay drawn once their tile is explored.
func (l *Level) RenderVisible(s *core.Screen, entities *entity.List, palette *core.Palette, visible *mapset.Set[core.Point]) {
	g := l.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if !g.Explored(x, y) {
				continue
			}
			lit := visible.Has(core.Pt(x, y))
			switch {
			case g.Walkable(x, y) && lit:
				s.Set(x, y, '.', palette.Get(core.ColorLightGround))
			case g.Walkable(x, y):
				s.Set(x, y, '.', palette.Get(core.ColorDarkGround))
			case lit:
				s.Set(x, y, '#', palette.Get(core.ColorLightWall))
			default:
				s.Set(x, y, '#', palette.Get(core.ColorDarkWall))
			}
		}
	}
	if entities == nil {
		return
	}
	for _, e := range entities.DrawOrder() {
		if visible.Has(e.Pos()) || (e.Stairs != nil && g.Explored(e.X, e.Y)) {
			s.Set(e.X, e.Y, e.Glyph, e.Color)
		}
	}
}
