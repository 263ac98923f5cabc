package config

import (
	_ "embed"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/dungeon"
	"github.com/vovakirdan/delve/internal/entity"
)

//go:embed defaults/dungeon.yaml
var defaultDungeonYAML []byte

// Default returns the built-in dungeon configuration.
func Default() DungeonConfig {
	settings := dungeon.DefaultSettings()
	player := dungeon.DefaultPlayerStats()

	monsters := make(map[entity.MonsterKind]chance.DepthTable)
	for k, t := range settings.Spawns.Monsters {
		monsters[k] = t
	}
	items := make(map[entity.ItemKind]chance.DepthTable)
	for k, t := range settings.Spawns.Items {
		items[k] = t
	}

	return DungeonConfig{
		Map: MapConfig{
			Width:  settings.Plan.MapWidth,
			Height: settings.Plan.MapHeight,
		},
		Rooms: RoomsConfig{
			MinSize:  settings.Plan.RoomMinSize,
			MaxSize:  settings.Plan.RoomMaxSize,
			MaxRooms: settings.Plan.MaxRooms,
		},
		Player: PlayerConfig{
			HP:      player.HP,
			Defense: player.Defense,
			Power:   player.Power,
		},
		Spawns: SpawnsConfig{
			MaxMonsters: settings.Spawns.MaxMonsters,
			MaxItems:    settings.Spawns.MaxItems,
			Monsters:    monsters,
			Items:       items,
		},
		Log: MessageLogConfig{
			Width:  58,
			Height: 6,
		},
		Palette:    map[string]string{},
		Difficulty: DifficultyNormal,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDungeonYAML
}
