package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/dungeon"
	"github.com/vovakirdan/delve/internal/effects"
	"github.com/vovakirdan/delve/internal/entity"
	"github.com/vovakirdan/delve/internal/msglog"
)

// Explorer is the state of one descent: the persistent player and the floor
// they are currently on. It knows nothing about terminals; the Model feeds it
// actions and draws the result.
type Explorer struct {
	gen      *dungeon.Generator
	palette  *core.Palette
	logger   *log.Logger
	messages *msglog.Log

	player   *entity.Entity
	level    *dungeon.Level
	entities *entity.List
	visible  *mapset.Set[core.Point]

	depth     int
	deepest   int
	turns     int
	xp        int
	dead      bool
	revealAll bool
}

// NewExplorer creates the player and generates the first floor.
func NewExplorer(gen *dungeon.Generator, stats dungeon.PlayerStats, messages *msglog.Log, palette *core.Palette, logger *log.Logger) (*Explorer, error) {
	if palette == nil {
		palette = core.DefaultPalette()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Explorer{
		gen:      gen,
		palette:  palette,
		logger:   logger,
		messages: messages,
		player:   dungeon.NewPlayer(stats, palette),
	}
	if err := e.enter(1); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Explorer) enter(depth int) error {
	level, entities, err := e.gen.NextFloor(e.player, e.messages, depth)
	if err != nil {
		return fmt.Errorf("entering floor %d: %w", depth, err)
	}
	e.level = level
	e.entities = entities
	e.depth = depth
	e.deepest = max(e.deepest, depth)
	e.refreshFOV()
	return nil
}

func (e *Explorer) refreshFOV() {
	e.visible = dungeon.ComputeFOV(e.level.Grid, e.player.X, e.player.Y, dungeon.DefaultFOVRadius)
}

func (e *Explorer) inView(x, y int) bool {
	return e.visible.Has(core.Pt(x, y))
}

func (e *Explorer) post(m msglog.Message) {
	if e.messages != nil {
		e.messages.Add(m)
	}
}

func (e *Explorer) say(text string, c core.Color) {
	e.post(msglog.Message{Text: text, Color: e.palette.Get(c)})
}

// Player returns the player entity.
func (e *Explorer) Player() *entity.Entity { return e.player }

// Level returns the current floor.
func (e *Explorer) Level() *dungeon.Level { return e.level }

// Entities returns the entities of the current floor.
func (e *Explorer) Entities() *entity.List { return e.entities }

// Depth returns the current floor number.
func (e *Explorer) Depth() int { return e.depth }

// Deepest returns the deepest floor reached so far.
func (e *Explorer) Deepest() int { return e.deepest }

// Turns returns how many turns have passed.
func (e *Explorer) Turns() int { return e.turns }

// XP returns the experience collected from solved errors.
func (e *Explorer) XP() int { return e.xp }

// Dead reports whether the player has died.
func (e *Explorer) Dead() bool { return e.dead }

// Visible reports whether (x, y) is in the player's field of view.
func (e *Explorer) Visible(x, y int) bool { return e.inView(x, y) }

// Draw renders the floor into s.
func (e *Explorer) Draw(s *core.Screen) {
	if e.revealAll {
		e.level.Render(s, e.entities, e.palette, true)
		return
	}
	e.level.RenderVisible(s, e.entities, e.palette, e.visible)
}

// Do applies one action and reports whether the player asked to quit.
// Only floor generation can fail.
func (e *Explorer) Do(a core.Action) (quit bool, err error) {
	if a == core.ActionQuit {
		return true, nil
	}
	if e.dead {
		return false, nil
	}

	switch {
	case a.IsMove():
		e.move(a.Delta())
	case a == core.ActionWait:
		e.endTurn()
	case a == core.ActionUse:
		e.useItem()
	case a == core.ActionDescend:
		return false, e.takeStairs()
	case a == core.ActionReveal:
		e.revealAll = !e.revealAll
	}
	return false, nil
}

func (e *Explorer) move(dx, dy int) {
	x, y := e.player.X+dx, e.player.Y+dy
	if !e.level.Grid.Walkable(x, y) {
		return
	}
	if blocker, ok := e.entities.BlockingAt(x, y); ok {
		e.say(fmt.Sprintf("The %s blocks your way.", blocker.Name), core.ColorYellow)
		return
	}
	e.player.MoveTo(x, y)
	e.refreshFOV()
	e.endTurn()
}

// endTurn advances monster status effects. Monsters do not act.
func (e *Explorer) endTurn() {
	e.turns++
	for _, m := range e.entities.Monsters() {
		m.AI = m.AI.Tick()
		if m.AI == nil {
			m.AI = entity.NewBasicAI()
		}
	}
}

func (e *Explorer) useItem() {
	item, ok := e.entities.ItemAt(e.player.X, e.player.Y)
	if !ok {
		e.say("There is nothing here to use.", core.ColorYellow)
		return
	}

	ctx := effects.Context{
		User:     e.player,
		Entities: e.entities,
		InView:   e.inView,
		Palette:  e.palette,
	}
	if item.Item.Targeting {
		target, found := e.nearestVisibleMonster()
		if !found {
			e.post(msglog.Message{Text: item.Item.Prompt, Color: item.Item.PromptColor})
			e.say("There is no error in sight.", core.ColorYellow)
			return
		}
		ctx.TargetX, ctx.TargetY = target.X, target.Y
	}

	results := effects.Use(item, ctx)
	for _, r := range results {
		if r.Message != nil {
			e.post(*r.Message)
		}
		if r.Dead != nil {
			e.kill(r.Dead)
		}
		e.xp += r.XP
	}
	if effects.Consumed(results) {
		e.entities.Remove(item)
		e.logger.Debug("item used", "item", item.Name, "depth", e.depth)
		e.endTurn()
	}
}

func (e *Explorer) kill(victim *entity.Entity) {
	if victim == e.player {
		e.dead = true
		e.player.Glyph = '%'
		e.player.Color = e.palette.Get(core.ColorDarkRed)
		e.say("You died!", core.ColorRed)
		e.logger.Info("player died", "depth", e.depth, "turns", e.turns)
		return
	}
	e.say(fmt.Sprintf("The %s is solved!", victim.Name), core.ColorOrange)
	victim.Kill(e.palette.Get(core.ColorDarkRed))
}

func (e *Explorer) nearestVisibleMonster() (*entity.Entity, bool) {
	var best *entity.Entity
	bestDist := 0.0
	for _, m := range e.entities.Monsters() {
		if !e.inView(m.X, m.Y) {
			continue
		}
		d := e.player.DistanceTo(m)
		if best == nil || d < bestDist {
			best, bestDist = m, d
		}
	}
	return best, best != nil
}

func (e *Explorer) takeStairs() error {
	if _, ok := e.entities.StairsAt(e.player.X, e.player.Y); !ok {
		e.say("There are no stairs here.", core.ColorYellow)
		return nil
	}
	e.logger.Debug("descending", "from", e.depth)
	return e.enter(e.depth + 1)
}
