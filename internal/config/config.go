// Package config provides YAML-based dungeon configuration loading and
// validation for delve.
package config

import (
	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/entity"
)

// DungeonConfig contains everything needed to generate and display floors.
type DungeonConfig struct {
	Map        MapConfig         `yaml:"map"`
	Rooms      RoomsConfig       `yaml:"rooms"`
	Player     PlayerConfig      `yaml:"player"`
	Spawns     SpawnsConfig      `yaml:"spawns"`
	Log        MessageLogConfig  `yaml:"message_log"`
	Palette    map[string]string `yaml:"palette"`
	Difficulty DifficultyPreset  `yaml:"difficulty"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// MapConfig defines the tile grid size.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RoomsConfig bounds room sampling.
type RoomsConfig struct {
	MinSize  int `yaml:"min_size"`
	MaxSize  int `yaml:"max_size"`
	MaxRooms int `yaml:"max_rooms"` // placement attempts per floor
}

// PlayerConfig defines the starting stats of the player.
type PlayerConfig struct {
	HP      int `yaml:"hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
}

// SpawnsConfig holds the depth tables used when populating rooms.
// Every table is a list of [value, min_depth] pairs in ascending depth order.
type SpawnsConfig struct {
	MaxMonsters chance.DepthTable                        `yaml:"max_monsters"`
	MaxItems    chance.DepthTable                        `yaml:"max_items"`
	Monsters    map[entity.MonsterKind]chance.DepthTable `yaml:"monsters"`
	Items       map[entity.ItemKind]chance.DepthTable    `yaml:"items"`
}

// MessageLogConfig sizes the message log panel.
type MessageLogConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // empty logs to the caller's writer
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}
