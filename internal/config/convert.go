package config

import (
	"fmt"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/dungeon"
	"github.com/vovakirdan/delve/internal/entity"
)

// PlanParams returns the room planner parameters.
func (c DungeonConfig) PlanParams() dungeon.PlanParams {
	return dungeon.PlanParams{
		MaxRooms:    c.Rooms.MaxRooms,
		RoomMinSize: c.Rooms.MinSize,
		RoomMaxSize: c.Rooms.MaxSize,
		MapWidth:    c.Map.Width,
		MapHeight:   c.Map.Height,
	}
}

// SpawnTables returns the populator tables with the difficulty offset applied.
func (c DungeonConfig) SpawnTables() dungeon.SpawnTables {
	delta := DepthOffsetForPreset(c.Difficulty)

	monsters := make(map[entity.MonsterKind]chance.DepthTable, len(c.Spawns.Monsters))
	for k, t := range c.Spawns.Monsters {
		monsters[k] = t.Shift(delta)
	}
	items := make(map[entity.ItemKind]chance.DepthTable, len(c.Spawns.Items))
	for k, t := range c.Spawns.Items {
		items[k] = t.Shift(delta)
	}

	return dungeon.SpawnTables{
		MaxMonsters: c.Spawns.MaxMonsters.Shift(delta),
		MaxItems:    c.Spawns.MaxItems.Shift(delta),
		Monsters:    monsters,
		Items:       items,
	}
}

// Settings bundles the planner parameters and spawn tables.
func (c DungeonConfig) Settings() dungeon.Settings {
	return dungeon.Settings{Plan: c.PlanParams(), Spawns: c.SpawnTables()}
}

// PlayerStats returns the starting player stats.
func (c DungeonConfig) PlayerStats() dungeon.PlayerStats {
	return dungeon.PlayerStats{HP: c.Player.HP, Defense: c.Player.Defense, Power: c.Player.Power}
}

// NewPalette builds the color palette with the configured overrides.
func (c DungeonConfig) NewPalette() (*core.Palette, error) {
	p, err := core.NewPalette(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return p, nil
}
