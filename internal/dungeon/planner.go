package dungeon

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/entity"
)

// Planner places non-overlapping rooms, links consecutive rooms with L-shaped
// corridors, and hands each new room to the populator.
type Planner struct {
	rng       chance.Rand
	populator *Populator
	palette   *core.Palette
	logger    *log.Logger

	placed Placement
}

// NewPlanner creates a planner. All randomness comes from rng, which must be
// the same source the populator uses for runs to be reproducible.
func NewPlanner(rng chance.Rand, populator *Populator, palette *core.Palette, logger *log.Logger) *Planner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Planner{rng: rng, populator: populator, palette: palette, logger: logger}
}

// MakeMap carves rooms and corridors into level, positions the player in the
// first room and puts stairs to the next floor at the center of the last room.
// It makes exactly p.MaxRooms attempts; a room that overlaps an accepted room
// is dropped. Returns the accepted rooms.
func (pl *Planner) MakeMap(level *Level, player *entity.Entity, entities *entity.List, p PlanParams) []core.Rect {
	pl.placed = Placement{}
	rooms := make([]core.Rect, 0, p.MaxRooms)

	for attempt := 0; attempt < p.MaxRooms; attempt++ {
		w := chance.RandInt(pl.rng, p.RoomMinSize, p.RoomMaxSize)
		h := chance.RandInt(pl.rng, p.RoomMinSize, p.RoomMaxSize)
		x := chance.RandInt(pl.rng, 0, p.MapWidth-w-1)
		y := chance.RandInt(pl.rng, 0, p.MapHeight-h-1)

		room := core.NewRect(x, y, w, h)
		if overlapsAny(room, rooms) {
			pl.logger.Debug("room rejected", "attempt", attempt, "room", room)
			continue
		}

		CarveRoom(level.Grid, room)
		c := room.Center()

		if len(rooms) == 0 {
			player.MoveTo(c.X, c.Y)
		} else {
			prev := rooms[len(rooms)-1].Center()
			if chance.RandInt(pl.rng, 0, 1) == 1 {
				CarveHTunnel(level.Grid, prev.X, c.X, prev.Y)
				CarveVTunnel(level.Grid, prev.Y, c.Y, c.X)
			} else {
				CarveVTunnel(level.Grid, prev.Y, c.Y, prev.X)
				CarveHTunnel(level.Grid, prev.X, c.X, c.Y)
			}
			if pl.populator != nil {
				pl.placed.add(pl.populator.Populate(room, entities, level.Depth))
			}
		}

		rooms = append(rooms, room)
	}

	if len(rooms) > 0 {
		last := rooms[len(rooms)-1].Center()
		entities.Add(entity.NewStairs(last.X, last.Y, level.Depth+1, pl.palette))
	}

	level.Rooms = rooms
	return rooms
}

// Placed returns the population totals of the last MakeMap call.
func (pl *Planner) Placed() Placement {
	return pl.placed
}

func overlapsAny(room core.Rect, rooms []core.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}
