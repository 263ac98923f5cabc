package dungeon

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/entity"
)

// Placement reports what Populate did with one room.
type Placement struct {
	Monsters int
	Items    int
	Skipped  int
}

func (p *Placement) add(o Placement) {
	p.Monsters += o.Monsters
	p.Items += o.Items
	p.Skipped += o.Skipped
}

// Populator fills rooms with depth-scaled monsters and items.
type Populator struct {
	rng     chance.Rand
	tables  SpawnTables
	palette *core.Palette
	logger  *log.Logger
}

// NewPopulator creates a populator drawing from rng.
func NewPopulator(rng chance.Rand, tables SpawnTables, palette *core.Palette, logger *log.Logger) *Populator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Populator{rng: rng, tables: tables, palette: palette, logger: logger}
}

// Populate places up to the depth's monster and item caps inside room.
// A slot whose tile is already taken, or whose weights resolve to nothing, is
// skipped without retry.
func (p *Populator) Populate(room core.Rect, entities *entity.List, depth int) Placement {
	var placed Placement

	maxMonsters := p.tables.MaxMonsters.At(depth)
	maxItems := p.tables.MaxItems.At(depth)

	numMonsters := chance.RandInt(p.rng, 0, maxMonsters)
	numItems := chance.RandInt(p.rng, 0, maxItems)

	monsterWeights := chance.ResolveWeights(p.tables.Monsters, depth)
	itemWeights := chance.ResolveWeights(p.tables.Items, depth)

	for range numMonsters {
		x, y := p.randomInterior(room)
		if _, taken := entities.At(x, y); taken {
			placed.Skipped++
			continue
		}
		kind, err := chance.WeightedDraw(p.rng, monsterWeights)
		if err != nil {
			p.skip("monster", depth, err)
			placed.Skipped++
			continue
		}
		m, err := entity.NewMonster(kind, x, y, p.palette)
		if err != nil {
			p.skip("monster", depth, err)
			placed.Skipped++
			continue
		}
		entities.Add(m)
		placed.Monsters++
	}

	for range numItems {
		x, y := p.randomInterior(room)
		if _, taken := entities.At(x, y); taken {
			placed.Skipped++
			continue
		}
		kind, err := chance.WeightedDraw(p.rng, itemWeights)
		if err != nil {
			p.skip("item", depth, err)
			placed.Skipped++
			continue
		}
		it, err := entity.NewItem(kind, x, y, p.palette)
		if err != nil {
			p.skip("item", depth, err)
			placed.Skipped++
			continue
		}
		entities.Add(it)
		placed.Items++
	}

	p.logger.Debug("room populated",
		"room", room,
		"depth", depth,
		"monsters", placed.Monsters,
		"items", placed.Items,
		"skipped", placed.Skipped)

	return placed
}

func (p *Populator) randomInterior(room core.Rect) (int, int) {
	x1, y1, x2, y2 := room.Interior()
	return chance.RandInt(p.rng, x1, x2), chance.RandInt(p.rng, y1, y2)
}

func (p *Populator) skip(what string, depth int, err error) {
	if errors.Is(err, chance.ErrInvalidDistribution) {
		p.logger.Debug("no "+what+" category available", "depth", depth, "error", err)
		return
	}
	p.logger.Warn("could not place "+what, "depth", depth, "error", err)
}
