package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/delve/internal/core"
)

// DefaultFOVRadius is how far the player sees.
const DefaultFOVRadius = 10

// ComputeFOV returns the tiles visible from (x, y) within radius and marks
// them explored. A tile is visible when the straight line to it crosses only
// transparent tiles; the blocking tile itself is still seen, so walls show up.
func ComputeFOV(g *Grid, x, y, radius int) *mapset.Set[core.Point] {
	visible := mapset.New[core.Point]()
	if !g.InBounds(x, y) {
		return &visible
	}

	r2 := radius * radius
	for ty := y - radius; ty <= y+radius; ty++ {
		for tx := x - radius; tx <= x+radius; tx++ {
			if !g.InBounds(tx, ty) {
				continue
			}
			dx, dy := tx-x, ty-y
			if dx*dx+dy*dy > r2 {
				continue
			}
			if lineOfSight(g, x, y, tx, ty) {
				visible.Put(core.Pt(tx, ty))
				g.SetExplored(tx, ty)
			}
		}
	}
	return &visible
}

// lineOfSight walks a Bresenham line from (x0, y0) to (x1, y1). Only the tiles
// strictly between the endpoints need to be transparent.
func lineOfSight(g *Grid, x0, y0, x1, y1 int) bool {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return true
		}
		if (x != x0 || y != y0) && !g.Transparent(x, y) {
			return false
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
