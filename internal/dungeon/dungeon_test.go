package dungeon

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/entity"
	"github.com/vovakirdan/delve/internal/msglog"
)

type recordingJournal struct {
	records []FloorRecord
	err     error
}

func (j *recordingJournal) RecordFloor(rec FloorRecord) error {
	j.records = append(j.records, rec)
	return j.err
}

func newTestPlayer() *entity.Entity {
	return NewPlayer(DefaultPlayerStats(), core.DefaultPalette())
}

func TestPlanParamsValidate(t *testing.T) {
	valid := DefaultSettings().Plan
	if err := valid.Validate(); err != nil {
		t.Fatalf("default params should be valid: %v", err)
	}

	tests := []struct {
		name   string
		modify func(p *PlanParams)
	}{
		{"no rooms", func(p *PlanParams) { p.MaxRooms = 0 }},
		{"tiny rooms", func(p *PlanParams) { p.RoomMinSize = 2 }},
		{"min over max", func(p *PlanParams) { p.RoomMinSize = 11 }},
		{"too wide", func(p *PlanParams) { p.MapWidth = 10 }},
		{"too tall", func(p *PlanParams) { p.MapHeight = 10 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.modify(&p)
			if err := p.Validate(); err == nil {
				t.Errorf("Validate() should fail for %+v", p)
			}
		})
	}
}

func TestGeneratedRoomsDoNotIntersect(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		gen := NewGenerator(DefaultSettings(), nil, WithSeed(seed))
		level, _, err := gen.NextFloor(newTestPlayer(), nil, 1+int(seed)%8)
		if err != nil {
			t.Fatalf("seed %d: NextFloor() failed: %v", seed, err)
		}
		rooms := level.Rooms
		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms accepted", seed)
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed %d: rooms %v and %v intersect", seed, rooms[i], rooms[j])
				}
			}
		}
	}
}

func TestGeneratedRoomsReachable(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		player := newTestPlayer()
		gen := NewGenerator(DefaultSettings(), nil, WithSeed(seed))
		level, _, err := gen.NextFloor(player, nil, 3)
		if err != nil {
			t.Fatalf("seed %d: NextFloor() failed: %v", seed, err)
		}
		if !AllRoomsReachable(level.Grid, player.Pos(), level.Rooms) {
			t.Errorf("seed %d: some room is unreachable from %v", seed, player.Pos())
		}
		reach := Reachable(level.Grid, player.Pos())
		if reach.Size() != level.Grid.WalkableCount() {
			t.Errorf("seed %d: reachable %d of %d walkable tiles", seed, reach.Size(), level.Grid.WalkableCount())
		}
	}
}

func TestPopulatedPositionsUnique(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		gen := NewGenerator(DefaultSettings(), nil, WithSeed(seed))
		_, entities, err := gen.NextFloor(newTestPlayer(), nil, 8)
		if err != nil {
			t.Fatalf("seed %d: NextFloor() failed: %v", seed, err)
		}
		seen := map[core.Point]string{}
		for _, e := range entities.All() {
			if e.IsPlayer() || e.Stairs != nil {
				continue
			}
			if prev, dup := seen[e.Pos()]; dup {
				t.Errorf("seed %d: %s and %s share %v", seed, prev, e.Name, e.Pos())
			}
			seen[e.Pos()] = e.Name
		}
	}
}

func TestPopulatedInsideWalkableTiles(t *testing.T) {
	gen := NewGenerator(DefaultSettings(), nil, WithSeed(5))
	level, entities, err := gen.NextFloor(newTestPlayer(), nil, 6)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}
	for _, e := range entities.All() {
		if !level.Grid.Walkable(e.X, e.Y) {
			t.Errorf("%s at %v is not on a walkable tile", e.Name, e.Pos())
		}
	}
}

func TestSingleRoomFloor(t *testing.T) {
	settings := DefaultSettings()
	settings.Plan.MaxRooms = 1

	player := newTestPlayer()
	gen := NewGenerator(settings, nil, WithSeed(11))
	level, entities, err := gen.NextFloor(player, nil, 4)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}

	if len(level.Rooms) != 1 {
		t.Fatalf("rooms = %d, expected 1", len(level.Rooms))
	}
	center := level.Rooms[0].Center()
	if player.Pos() != center {
		t.Errorf("player at %v, expected room center %v", player.Pos(), center)
	}
	if len(entities.Monsters()) != 0 || len(entities.Items()) != 0 {
		t.Errorf("start room should not be populated: %d monsters, %d items", len(entities.Monsters()), len(entities.Items()))
	}
	if entities.Len() != 2 {
		t.Errorf("entities = %d, expected player and stairs", entities.Len())
	}
	stairs, ok := entities.StairsAt(center.X, center.Y)
	if !ok {
		t.Fatal("stairs should be at the room center")
	}
	if stairs.Stairs.Floor != 5 {
		t.Errorf("stairs lead to %d, expected 5", stairs.Stairs.Floor)
	}
}

func TestNextFloorHealsHalfMaxHP(t *testing.T) {
	tests := []struct {
		hp, max  int
		expected int
	}{
		{10, 40, 30},
		{35, 40, 40},
		{1, 100, 51},
	}

	for _, tc := range tests {
		player := newTestPlayer()
		player.Fighter.HP = tc.hp
		player.Fighter.MaxHP = tc.max

		gen := NewGenerator(DefaultSettings(), nil, WithSeed(3))
		if _, _, err := gen.NextFloor(player, nil, 2); err != nil {
			t.Fatalf("NextFloor() failed: %v", err)
		}
		if player.Fighter.HP != tc.expected {
			t.Errorf("hp=%d max=%d: HP after NextFloor = %d, expected %d", tc.hp, tc.max, player.Fighter.HP, tc.expected)
		}
	}
}

func TestNextFloorLogsRestMessage(t *testing.T) {
	log := msglog.New(0, 58, 6)
	palette := core.DefaultPalette()
	gen := NewGenerator(DefaultSettings(), palette, WithSeed(3))

	if _, _, err := gen.NextFloor(newTestPlayer(), log, 2); err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}
	lines := log.Lines()
	if len(lines) != 1 || lines[0].Text != RestMessage {
		t.Fatalf("log = %+v, expected the rest message", lines)
	}
	if lines[0].Color != palette.Get(core.ColorLightViolet) {
		t.Errorf("message color = %v, expected light violet", lines[0].Color)
	}
}

func TestNextFloorReplacesEntities(t *testing.T) {
	player := newTestPlayer()
	gen := NewGenerator(DefaultSettings(), nil, WithSeed(9))

	first, firstEntities, err := gen.NextFloor(player, nil, 1)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}
	firstLen := firstEntities.Len()
	firstGrid := first.Grid.Clone()

	second, secondEntities, err := gen.NextFloor(player, nil, 2)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}
	if second.Depth != 2 || first.Depth != 1 {
		t.Errorf("depths = %d, %d", first.Depth, second.Depth)
	}
	if firstEntities.Len() != firstLen || !first.Grid.Equal(firstGrid) {
		t.Error("previous floor should be left untouched")
	}
	if secondEntities.All()[0] != player {
		t.Error("new entity list should start with the player")
	}
}

func TestNextFloorDeterministic(t *testing.T) {
	run := func() (*Level, *entity.List) {
		gen := NewGenerator(DefaultSettings(), nil, WithSeed(1234))
		level, entities, err := gen.NextFloor(newTestPlayer(), nil, 7)
		if err != nil {
			t.Fatalf("NextFloor() failed: %v", err)
		}
		return level, entities
	}

	l1, e1 := run()
	l2, e2 := run()

	if !l1.Grid.Equal(l2.Grid) {
		t.Fatal("grids differ for equal seeds")
	}
	if e1.Len() != e2.Len() {
		t.Fatalf("entity counts differ: %d vs %d", e1.Len(), e2.Len())
	}
	for i := range e1.All() {
		a, b := e1.All()[i], e2.All()[i]
		if a.Pos() != b.Pos() || a.Kind != b.Kind {
			t.Errorf("entity %d differs: %s@%v vs %s@%v", i, a.Kind, a.Pos(), b.Kind, b.Pos())
		}
	}
}

func TestNextFloorInvalidPlan(t *testing.T) {
	settings := DefaultSettings()
	settings.Plan.MaxRooms = 0
	gen := NewGenerator(settings, nil, WithSeed(1))
	if _, _, err := gen.NextFloor(newTestPlayer(), nil, 1); err == nil {
		t.Error("NextFloor() should reject an invalid plan")
	}
}

func TestNextFloorJournal(t *testing.T) {
	j := &recordingJournal{}
	gen := NewGenerator(DefaultSettings(), nil, WithSeed(2), WithJournal(j))

	level, entities, err := gen.NextFloor(newTestPlayer(), nil, 3)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}
	if len(j.records) != 1 {
		t.Fatalf("journal records = %d, expected 1", len(j.records))
	}
	rec := j.records[0]
	if rec.Depth != 3 || rec.Rooms != len(level.Rooms) || rec.Walkable != level.Grid.WalkableCount() {
		t.Errorf("record = %+v", rec)
	}
	if rec.Monsters != len(entities.Monsters()) || rec.Items != len(entities.Items()) {
		t.Errorf("record counts %d/%d, entities %d/%d", rec.Monsters, rec.Items, len(entities.Monsters()), len(entities.Items()))
	}

	j.err = errors.New("disk full")
	if _, _, err := gen.NextFloor(newTestPlayer(), nil, 4); err != nil {
		t.Errorf("journal errors should not fail generation: %v", err)
	}
}

func TestPopulateOccupiedTileSkipped(t *testing.T) {
	tables := DefaultSpawnTables()
	tables.MaxMonsters = chance.Flat(5)
	tables.MaxItems = chance.Flat(5)

	// interior is the single tile (1, 1)
	room := core.NewRect(0, 0, 2, 2)
	blocker := newTestPlayer()
	blocker.MoveTo(1, 1)
	entities := entity.NewList(blocker)

	p := NewPopulator(rand.New(rand.NewSource(8)), tables, core.DefaultPalette(), nil)
	placed := p.Populate(room, entities, 1)

	if placed.Monsters != 0 || placed.Items != 0 {
		t.Errorf("Populate() placed %+v on an occupied room", placed)
	}
	if entities.Len() != 1 {
		t.Errorf("entities = %d, expected only the blocker", entities.Len())
	}
}

func TestPopulateAtMostOnePerTile(t *testing.T) {
	tables := DefaultSpawnTables()
	tables.MaxMonsters = chance.Flat(5)
	tables.MaxItems = chance.Flat(5)
	room := core.NewRect(0, 0, 2, 2)

	for seed := int64(1); seed <= 20; seed++ {
		entities := entity.NewList()
		p := NewPopulator(rand.New(rand.NewSource(seed)), tables, core.DefaultPalette(), nil)
		placed := p.Populate(room, entities, 1)
		if placed.Monsters+placed.Items > 1 || entities.Len() > 1 {
			t.Errorf("seed %d: %+v placed on a single-tile room", seed, placed)
		}
	}
}

func TestPopulateEmptyWeightsSkipsSlot(t *testing.T) {
	tables := SpawnTables{
		MaxMonsters: chance.Flat(3),
		MaxItems:    chance.Flat(3),
		Monsters:    map[entity.MonsterKind]chance.DepthTable{entity.MonsterNullPointer: chance.Table([2]int{15, 3})},
		Items:       map[entity.ItemKind]chance.DepthTable{},
	}
	room := core.NewRect(0, 0, 10, 10)

	for seed := int64(1); seed <= 20; seed++ {
		entities := entity.NewList()
		p := NewPopulator(rand.New(rand.NewSource(seed)), tables, core.DefaultPalette(), nil)
		placed := p.Populate(room, entities, 1)
		if placed.Monsters != 0 || placed.Items != 0 || entities.Len() != 0 {
			t.Errorf("seed %d: nothing should be placed when every weight is zero, got %+v", seed, placed)
		}
	}
}

func TestEarlyFloorsExcludeDeepItems(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		gen := NewGenerator(DefaultSettings(), nil, WithSeed(seed))
		_, entities, err := gen.NextFloor(newTestPlayer(), nil, 1)
		if err != nil {
			t.Fatalf("NextFloor() failed: %v", err)
		}
		for _, e := range entities.All() {
			switch e.Kind {
			case string(entity.MonsterNullPointer), string(entity.ItemIDE), string(entity.ItemCompiler),
				string(entity.ItemBacktrace), string(entity.ItemStackOverflow), string(entity.ItemUnknownError):
				t.Errorf("seed %d: %s should not appear on floor 1", seed, e.Kind)
			}
		}
	}
}

func TestReachableFromWall(t *testing.T) {
	g := NewGrid(5, 5)
	if Reachable(g, core.Pt(2, 2)).Size() != 0 {
		t.Error("a solid start tile should reach nothing")
	}
	CarveHTunnel(g, 0, 1, 0)
	CarveHTunnel(g, 3, 4, 0)
	if Reachable(g, core.Pt(0, 0)).Size() != 2 {
		t.Error("disconnected tunnels should not be reachable from each other")
	}
	rooms := []core.Rect{core.NewRect(2, -1, 2, 2)}
	if AllRoomsReachable(g, core.Pt(0, 0), rooms) {
		t.Error("room at (3, 0) should be unreachable")
	}
}

func TestLevelRender(t *testing.T) {
	palette := core.DefaultPalette()
	player := newTestPlayer()
	gen := NewGenerator(DefaultSettings(), palette, WithSeed(4))
	level, entities, err := gen.NextFloor(player, nil, 1)
	if err != nil {
		t.Fatalf("NextFloor() failed: %v", err)
	}

	s := core.NewScreen(level.Grid.W, level.Grid.H)
	level.Render(s, entities, palette, false)
	if s.Get(player.X, player.Y) != ' ' {
		t.Error("unexplored tiles should stay blank")
	}

	level.Render(s, entities, palette, true)
	if s.Get(player.X, player.Y) != '@' {
		t.Errorf("player tile = %q, expected '@'", s.Get(player.X, player.Y))
	}
}
