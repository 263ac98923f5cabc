package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// DepthOffsetForPreset returns how many floors depth-gated spawns move.
// Negative values unlock deeper monsters and items sooner.
func DepthOffsetForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return -2
	default:
		return 0
	}
}

// ApplyDifficultyPreset sets the preset on cfg. An empty preset leaves cfg unchanged.
func ApplyDifficultyPreset(cfg *DungeonConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
}
