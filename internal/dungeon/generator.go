package dungeon

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/entity"
	"github.com/vovakirdan/delve/internal/msglog"
)

// RestMessage is logged every time the player reaches a new floor.
const RestMessage = "You take a moment to rest, and rub your eyes."

// MessageSink receives flavor messages. *msglog.Log implements it.
type MessageSink interface {
	Add(m msglog.Message)
}

// FloorRecord summarizes one generated floor.
type FloorRecord struct {
	Depth    int
	Rooms    int
	Monsters int
	Items    int
	Skipped  int
	Walkable int
}

// Journal persists floor summaries. Implementations live outside this package.
type Journal interface {
	RecordFloor(rec FloorRecord) error
}

// Generator produces floors from a fixed set of settings and one random source.
type Generator struct {
	settings Settings
	palette  *core.Palette
	rng      *rand.Rand
	logger   *log.Logger
	journal  Journal
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's random source. Equal seeds give equal floors.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithJournal records every generated floor to j.
func WithJournal(j Journal) Option {
	return func(g *Generator) {
		g.journal = j
	}
}

// NewGenerator creates a generator. Without WithSeed or WithRand the source is
// seeded from the clock.
func NewGenerator(settings Settings, palette *core.Palette, opts ...Option) *Generator {
	g := &Generator{
		settings: settings,
		palette:  palette,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.palette == nil {
		g.palette = core.DefaultPalette()
	}
	return g
}

// Settings returns the generator settings.
func (g *Generator) Settings() Settings {
	return g.settings
}

// NewPlayer builds the persistent player entity.
func NewPlayer(stats PlayerStats, palette *core.Palette) *entity.Entity {
	return entity.NewPlayer(stats.HP, stats.Defense, stats.Power, palette)
}

// NextFloor builds a fresh level at depth holding only the player plus what the
// planner places, then rests the player for half of their maximum hit points.
// The previous level and entities are not touched.
func (g *Generator) NextFloor(player *entity.Entity, messages MessageSink, depth int) (*Level, *entity.List, error) {
	plan := g.settings.Plan
	if err := plan.Validate(); err != nil {
		return nil, nil, fmt.Errorf("dungeon: invalid plan: %w", err)
	}

	level := NewLevel(plan.MapWidth, plan.MapHeight, depth)
	entities := entity.NewList(player)

	populator := NewPopulator(g.rng, g.settings.Spawns, g.palette, g.logger)
	planner := NewPlanner(g.rng, populator, g.palette, g.logger)
	rooms := planner.MakeMap(level, player, entities, plan)

	if player.Fighter != nil {
		player.Fighter.Heal(player.Fighter.MaxHP / 2)
	}
	if messages != nil {
		messages.Add(msglog.Message{Text: RestMessage, Color: g.palette.Get(core.ColorLightViolet)})
	}

	placed := planner.Placed()
	rec := FloorRecord{
		Depth:    depth,
		Rooms:    len(rooms),
		Monsters: placed.Monsters,
		Items:    placed.Items,
		Skipped:  placed.Skipped,
		Walkable: level.Grid.WalkableCount(),
	}
	g.logger.Info("floor generated",
		"depth", rec.Depth,
		"rooms", rec.Rooms,
		"monsters", rec.Monsters,
		"items", rec.Items)

	if g.journal != nil {
		if err := g.journal.RecordFloor(rec); err != nil {
			g.logger.Warn("could not record floor", "depth", depth, "error", err)
		}
	}

	return level, entities, nil
}
