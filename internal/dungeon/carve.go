package dungeon

import "github.com/vovakirdan/delve/internal/core"

// CarveRoom opens the interior of room, leaving its border as wall.
func CarveRoom(g *Grid, room core.Rect) {
	x1, y1, x2, y2 := room.Interior()
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			g.open(x, y)
		}
	}
}

// CarveHTunnel opens row y from x1 to x2 inclusive, in either order.
func CarveHTunnel(g *Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.open(x, y)
	}
}

// CarveVTunnel opens column x from y1 to y2 inclusive, in either order.
func CarveVTunnel(g *Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.open(x, y)
	}
}
