package dungeon

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/entity"
)

// PlanParams bounds room generation for one floor.
type PlanParams struct {
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
	MapWidth    int
	MapHeight   int
}

// Validate rejects parameters for which room sampling could leave the grid.
func (p PlanParams) Validate() error {
	var errs []error
	if p.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("max rooms must be at least 1, got %d", p.MaxRooms))
	}
	if p.RoomMinSize < 3 {
		errs = append(errs, fmt.Errorf("room min size must be at least 3, got %d", p.RoomMinSize))
	}
	if p.RoomMinSize > p.RoomMaxSize {
		errs = append(errs, fmt.Errorf("room min size %d exceeds max size %d", p.RoomMinSize, p.RoomMaxSize))
	}
	if p.RoomMaxSize+1 > p.MapWidth {
		errs = append(errs, fmt.Errorf("room max size %d does not fit map width %d", p.RoomMaxSize, p.MapWidth))
	}
	if p.RoomMaxSize+1 > p.MapHeight {
		errs = append(errs, fmt.Errorf("room max size %d does not fit map height %d", p.RoomMaxSize, p.MapHeight))
	}
	return errors.Join(errs...)
}

// SpawnTables holds the depth-scaled caps and category weights used when
// populating rooms.
type SpawnTables struct {
	MaxMonsters chance.DepthTable
	MaxItems    chance.DepthTable
	Monsters    map[entity.MonsterKind]chance.DepthTable
	Items       map[entity.ItemKind]chance.DepthTable
}

// DefaultSpawnTables returns the stock monster and item tables.
func DefaultSpawnTables() SpawnTables {
	return SpawnTables{
		MaxMonsters: chance.Table([2]int{2, 1}, [2]int{3, 4}, [2]int{5, 6}),
		MaxItems:    chance.Table([2]int{1, 1}, [2]int{2, 4}),
		Monsters: map[entity.MonsterKind]chance.DepthTable{
			entity.MonsterSyntaxError: chance.Flat(80),
			entity.MonsterNullPointer: chance.Table([2]int{15, 3}, [2]int{30, 5}, [2]int{60, 7}),
		},
		Items: map[entity.ItemKind]chance.DepthTable{
			entity.ItemCoffee:        chance.Flat(35),
			entity.ItemIDE:           chance.Table([2]int{5, 4}),
			entity.ItemCompiler:      chance.Table([2]int{15, 8}),
			entity.ItemBacktrace:     chance.Table([2]int{25, 4}),
			entity.ItemStackOverflow: chance.Table([2]int{25, 6}),
			entity.ItemUnknownError:  chance.Table([2]int{10, 2}),
		},
	}
}

// PlayerStats are the starting combat stats of the player.
type PlayerStats struct {
	HP      int
	Defense int
	Power   int
}

// DefaultPlayerStats returns hp 100, defense 1, power 2.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{HP: 100, Defense: 1, Power: 2}
}

// Settings is everything the generator needs besides randomness and colors.
type Settings struct {
	Plan   PlanParams
	Spawns SpawnTables
}

// DefaultSettings returns an 80x43 map with 30 room attempts of size 6..10.
func DefaultSettings() Settings {
	return Settings{
		Plan: PlanParams{
			MaxRooms:    30,
			RoomMinSize: 6,
			RoomMaxSize: 10,
			MapWidth:    80,
			MapHeight:   43,
		},
		Spawns: DefaultSpawnTables(),
	}
}
