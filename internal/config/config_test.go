package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/entity"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	p := cfg.PlanParams()
	if p.MapWidth != 80 || p.MapHeight != 43 || p.RoomMinSize != 6 || p.RoomMaxSize != 10 || p.MaxRooms != 30 {
		t.Errorf("PlanParams() = %+v", p)
	}
	if s := cfg.PlayerStats(); s.HP != 100 || s.Defense != 1 || s.Power != 2 {
		t.Errorf("PlayerStats() = %+v", s)
	}
	if cfg.Log.Width != 58 || cfg.Log.Height != 6 {
		t.Errorf("message log = %+v", cfg.Log)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
rooms:
  max_rooms: 5
spawns:
  monsters:
    null_pointer: [[50, 1]]
palette:
  light_wall: "#112233"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rooms.MaxRooms != 5 {
		t.Errorf("MaxRooms = %d, expected 5", cfg.Rooms.MaxRooms)
	}
	if cfg.Rooms.MinSize != 6 || cfg.Map.Width != 80 {
		t.Error("keys missing from the file should keep their defaults")
	}
	if got := cfg.Spawns.Monsters[entity.MonsterNullPointer].At(1); got != 50 {
		t.Errorf("null_pointer at depth 1 = %d, expected 50", got)
	}
	if got := cfg.Spawns.Monsters[entity.MonsterSyntaxError].At(1); got != 80 {
		t.Errorf("syntax_error at depth 1 = %d, expected 80", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
	palette, err := cfg.NewPalette()
	if err != nil {
		t.Fatalf("NewPalette() failed: %v", err)
	}
	if palette == nil {
		t.Error("NewPalette() returned nil")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".delve", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("map:\n  width: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Map.Width != 100 || cfg.Map.Height != 43 {
		t.Errorf("Map = %+v, expected width 100 height 43", cfg.Map)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rooms: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *DungeonConfig)
		want   string
	}{
		{"zero rooms", func(c *DungeonConfig) { c.Rooms.MaxRooms = 0 }, "max rooms"},
		{"room too big", func(c *DungeonConfig) { c.Rooms.MaxSize = 50 }, "map height"},
		{"dead player", func(c *DungeonConfig) { c.Player.HP = 0 }, "player hp"},
		{"unsorted", func(c *DungeonConfig) {
			c.Spawns.MaxItems = chance.Table([2]int{2, 4}, [2]int{1, 1})
		}, "ascending"},
		{"negative weight", func(c *DungeonConfig) {
			c.Spawns.Items[entity.ItemCoffee] = chance.Table([2]int{-5, 0})
		}, "negative value"},
		{"unknown monster", func(c *DungeonConfig) {
			c.Spawns.Monsters["segfault"] = chance.Flat(10)
		}, "unknown monster"},
		{"bad color", func(c *DungeonConfig) { c.Palette["mauve"] = "#ffffff" }, "palette"},
		{"bad hex", func(c *DungeonConfig) { c.Palette["red"] = "#ff" }, "palette"},
		{"bad difficulty", func(c *DungeonConfig) { c.Difficulty = "nightmare" }, "difficulty"},
		{"bad log level", func(c *DungeonConfig) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() error = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Rooms.MaxRooms = 0
	cfg.Player.HP = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "max rooms") || !strings.Contains(err.Error(), "player hp") {
		t.Errorf("Validate() error = %q, expected both problems", err)
	}
}

func TestDifficultyShiftsSpawnTables(t *testing.T) {
	cfg := Default()

	normal := cfg.SpawnTables()
	if normal.Monsters[entity.MonsterNullPointer].At(1) != 0 {
		t.Error("null pointers should not spawn on floor 1 at normal difficulty")
	}

	ApplyDifficultyPreset(&cfg, DifficultyHard)
	hard := cfg.SpawnTables()
	if hard.Monsters[entity.MonsterNullPointer].At(1) != 15 {
		t.Errorf("hard null_pointer at depth 1 = %d, expected 15", hard.Monsters[entity.MonsterNullPointer].At(1))
	}
	if hard.Monsters[entity.MonsterSyntaxError].At(1) != 80 {
		t.Error("flat tables should not move")
	}
	if cfg.Spawns.Monsters[entity.MonsterNullPointer].At(1) != 0 {
		t.Error("SpawnTables() should not modify the configured tables")
	}

	ApplyDifficultyPreset(&cfg, "")
	if cfg.Difficulty != DifficultyHard {
		t.Error("empty preset should leave difficulty unchanged")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() failed: %v", err)
	}
	if err := WriteDefault(path, false); err == nil {
		t.Error("WriteDefault() should refuse to overwrite")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("written default should load back as Default()")
	}
}
