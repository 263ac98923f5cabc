package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/delve/internal/core"
)

var neighbors = [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Reachable returns every walkable tile 4-connected to start.
// The set is empty when start itself is not walkable.
func Reachable(g *Grid, start core.Point) *mapset.Set[core.Point] {
	visited := mapset.New[core.Point]()
	if !g.Walkable(start.X, start.Y) {
		return &visited
	}

	queue := []core.Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbors {
			next := cur.Add(d.X, d.Y)
			if visited.Has(next) || !g.Walkable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return &visited
}

// AllRoomsReachable reports whether the center of every room can be reached
// from start over walkable tiles.
func AllRoomsReachable(g *Grid, start core.Point, rooms []core.Rect) bool {
	reach := Reachable(g, start)
	for _, r := range rooms {
		if !reach.Has(r.Center()) {
			return false
		}
	}
	return true
}
