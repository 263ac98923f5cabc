package dungeon

import (
	"testing"

	"github.com/vovakirdan/delve/internal/core"
)

func TestComputeFOVOpenRoom(t *testing.T) {
	g := NewGrid(20, 20)
	CarveRoom(g, core.NewRect(0, 0, 19, 19))

	visible := ComputeFOV(g, 10, 10, 3)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{13, 10, true},
		{10, 7, true},
		{12, 12, true},
		{14, 10, false},
		{13, 13, false},
	}
	for _, tc := range tests {
		if got := visible.Has(core.Pt(tc.x, tc.y)); got != tc.expected {
			t.Errorf("visible(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
		if got := g.Explored(tc.x, tc.y); got != tc.expected {
			t.Errorf("Explored(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestComputeFOVWallsBlockSight(t *testing.T) {
	// Two rooms joined by nothing: the wall between them is seen, the far
	// room is not.
	g := NewGrid(30, 10)
	CarveRoom(g, core.NewRect(0, 0, 8, 8))
	CarveRoom(g, core.NewRect(10, 0, 8, 8))

	visible := ComputeFOV(g, 4, 4, 10)

	if !visible.Has(core.Pt(8, 4)) {
		t.Error("wall next to the room should be visible")
	}
	if visible.Has(core.Pt(12, 4)) {
		t.Error("tile behind the wall should not be visible")
	}
	if g.Explored(12, 4) {
		t.Error("tile behind the wall should stay unexplored")
	}
}

func TestComputeFOVOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if got := ComputeFOV(g, -1, 2, 4).Size(); got != 0 {
		t.Errorf("ComputeFOV(outside).Size() = %d, expected 0", got)
	}
}

func TestRenderVisible(t *testing.T) {
	palette := core.DefaultPalette()
	player := newTestPlayer()
	gen := NewGenerator(DefaultSettings(), palette, WithSeed(8))
	level, entities, err := gen.NextFloor(player, nil, 1)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}

	visible := ComputeFOV(level.Grid, player.X, player.Y, DefaultFOVRadius)
	s := core.NewScreen(level.Grid.W, level.Grid.H)
	level.RenderVisible(s, entities, palette, visible)

	if s.Get(player.X, player.Y) != '@' {
		t.Errorf("player tile = %q, expected '@'", s.Get(player.X, player.Y))
	}

	// Moving the view away leaves the old tiles remembered in dark colors.
	far := ComputeFOV(level.Grid, 0, 0, 0)
	s.Clear()
	level.RenderVisible(s, nil, palette, far)
	cell := s.GetCell(player.X, player.Y)
	if cell.Rune != '.' || cell.Color != palette.Get(core.ColorDarkGround) {
		t.Errorf("remembered tile = %q %v, expected dark ground", cell.Rune, cell.Color)
	}
}
