package dungeon

import (
	"errors"
	"testing"

	"github.com/vovakirdan/delve/internal/core"
)

func TestNewGridIsSolid(t *testing.T) {
	g := NewGrid(10, 5)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Walkable(x, y) || g.Transparent(x, y) || g.Explored(x, y) {
				t.Fatalf("tile (%d, %d) should start solid and unexplored", x, y)
			}
		}
	}
	if g.WalkableCount() != 0 {
		t.Errorf("WalkableCount() = %d, expected 0", g.WalkableCount())
	}
}

func TestCarveRoomInterior(t *testing.T) {
	g := NewGrid(10, 10)
	CarveRoom(g, core.NewRect(1, 1, 4, 3)) // x 1..5, y 1..4

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			inside := x >= 2 && x <= 4 && y >= 2 && y <= 3
			if g.Walkable(x, y) != inside {
				t.Errorf("Walkable(%d, %d) = %v, expected %v", x, y, g.Walkable(x, y), inside)
			}
			if g.Transparent(x, y) != inside {
				t.Errorf("Transparent(%d, %d) = %v, expected %v", x, y, g.Transparent(x, y), inside)
			}
		}
	}
	if g.WalkableCount() != 6 {
		t.Errorf("WalkableCount() = %d, expected 6", g.WalkableCount())
	}
}

func TestCarveTunnelsInclusive(t *testing.T) {
	tests := []struct {
		name  string
		carve func(g *Grid)
		tiles []core.Point
	}{
		{"h forward", func(g *Grid) { CarveHTunnel(g, 2, 5, 3) }, []core.Point{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}},
		{"h reverse", func(g *Grid) { CarveHTunnel(g, 5, 2, 3) }, []core.Point{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}},
		{"v forward", func(g *Grid) { CarveVTunnel(g, 1, 3, 7) }, []core.Point{{X: 7, Y: 1}, {X: 7, Y: 2}, {X: 7, Y: 3}}},
		{"v reverse", func(g *Grid) { CarveVTunnel(g, 3, 1, 7) }, []core.Point{{X: 7, Y: 1}, {X: 7, Y: 2}, {X: 7, Y: 3}}},
		{"single", func(g *Grid) { CarveHTunnel(g, 4, 4, 4) }, []core.Point{{X: 4, Y: 4}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(10, 10)
			tc.carve(g)
			for _, p := range tc.tiles {
				if !g.Walkable(p.X, p.Y) {
					t.Errorf("(%d, %d) should be walkable", p.X, p.Y)
				}
			}
			if g.WalkableCount() != len(tc.tiles) {
				t.Errorf("WalkableCount() = %d, expected %d", g.WalkableCount(), len(tc.tiles))
			}
		})
	}
}

func TestCarveOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(5, 5)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("carving outside the grid should panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("panic value = %v, expected ErrOutOfBounds", r)
		}
	}()
	CarveHTunnel(g, 3, 6, 2)
}

func TestCarveNeverReverts(t *testing.T) {
	g := NewGrid(10, 10)
	CarveHTunnel(g, 0, 9, 5)
	CarveRoom(g, core.NewRect(2, 3, 4, 4))
	for x := 0; x < 10; x++ {
		if !g.Walkable(x, 5) {
			t.Errorf("(%d, 5) reverted to rock", x)
		}
	}
}

func TestGridCloneEqual(t *testing.T) {
	g := NewGrid(6, 6)
	CarveRoom(g, core.NewRect(0, 0, 4, 4))
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.SetExplored(1, 1)
	if g.Equal(c) {
		t.Error("modifying the clone should not affect the original")
	}
	if g.Explored(1, 1) {
		t.Error("original should stay unexplored")
	}
	if g.Equal(NewGrid(5, 6)) || g.Equal(nil) {
		t.Error("grids of different size should not be equal")
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(4, 3)
	CarveHTunnel(g, 1, 2, 1)
	expected := "####\n#..#\n####"
	if g.String() != expected {
		t.Errorf("String() = %q, expected %q", g.String(), expected)
	}
}

func TestGridOutOfBoundsReads(t *testing.T) {
	g := NewGrid(3, 3)
	if g.Walkable(-1, 0) || g.Transparent(3, 0) || g.Explored(0, 3) {
		t.Error("out-of-bounds reads should be false")
	}
	g.SetExplored(10, 10)
}
