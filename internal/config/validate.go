package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/entity"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration and reports every problem at once.
func (c DungeonConfig) Validate() error {
	var errs []error

	if err := c.PlanParams().Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Player.HP <= 0 {
		errs = append(errs, fmt.Errorf("player hp must be positive, got %d", c.Player.HP))
	}
	if c.Log.Width <= 0 || c.Log.Height <= 0 {
		errs = append(errs, fmt.Errorf("message log must be at least 1x1, got %dx%d", c.Log.Width, c.Log.Height))
	}

	errs = append(errs, checkTable("spawns.max_monsters", c.Spawns.MaxMonsters)...)
	errs = append(errs, checkTable("spawns.max_items", c.Spawns.MaxItems)...)

	for _, k := range sortedKeys(c.Spawns.Monsters) {
		if !entity.KnownMonster(k) {
			errs = append(errs, fmt.Errorf("spawns.monsters: unknown monster %q", k))
		}
		errs = append(errs, checkTable("spawns.monsters."+string(k), c.Spawns.Monsters[k])...)
	}
	for _, k := range sortedKeys(c.Spawns.Items) {
		if !entity.KnownItem(k) {
			errs = append(errs, fmt.Errorf("spawns.items: unknown item %q", k))
		}
		errs = append(errs, checkTable("spawns.items."+string(k), c.Spawns.Items[k])...)
	}

	if _, err := c.NewPalette(); err != nil {
		errs = append(errs, err)
	}

	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func checkTable(name string, t chance.DepthTable) []error {
	var errs []error
	if !t.Sorted() {
		errs = append(errs, fmt.Errorf("%s: breakpoints must be in ascending depth order", name))
	}
	for _, b := range t {
		if b.Value < 0 {
			errs = append(errs, fmt.Errorf("%s: negative value %d at depth %d", name, b.Value, b.MinDepth))
		}
		if b.MinDepth < 0 {
			errs = append(errs, fmt.Errorf("%s: negative depth %d", name, b.MinDepth))
		}
	}
	return errs
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

