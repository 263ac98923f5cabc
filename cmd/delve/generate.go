package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/dungeon"
	"github.com/vovakirdan/delve/internal/entity"
)

var (
	flagDepth int
	flagCheck bool
	flagYAML  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one floor and print it",
	Long: `Generate a single floor and print it as ASCII: '#' is rock, '.' is floor,
and entities are drawn with their glyphs.

Examples:
  delve generate
  delve generate --seed 42 --depth 6
  delve generate --check
  delve generate --yaml > floor.yaml`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagDepth, "depth", 1, "Dungeon level to generate")
	generateCmd.Flags().BoolVar(&flagCheck, "check", false, "Verify every room is reachable from the player")
	generateCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Dump the floor as YAML instead of ASCII")
}

// floorDump is the YAML form of a generated floor.
type floorDump struct {
	Seed     int64        `yaml:"seed"`
	Depth    int          `yaml:"depth"`
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Rooms    []roomDump   `yaml:"rooms"`
	Entities []entityDump `yaml:"entities"`
	Map      []string     `yaml:"map"`
}

type roomDump struct {
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`
}

type entityDump struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

func runGenerate(_ *cobra.Command, _ []string) {
	if flagDepth < 1 {
		exitOnError("parsing flags", fmt.Errorf("--depth must be at least 1, got %d", flagDepth))
	}

	a, err := newApp(false)
	exitOnError("loading config", err)
	defer a.Close()

	rt := runtimeConfig(0, 0)
	gen := dungeon.NewGenerator(a.cfg.Settings(), a.palette,
		dungeon.WithSeed(rt.Seed),
		dungeon.WithLogger(a.logger),
	)
	player := dungeon.NewPlayer(a.cfg.PlayerStats(), a.palette)

	level, entities, err := gen.NextFloor(player, nil, flagDepth)
	exitOnError("generating floor", err)

	screen := core.NewScreen(level.Grid.W, level.Grid.H)
	level.Render(screen, entities, a.palette, true)

	if flagYAML {
		exitOnError("writing YAML", dumpFloor(rt.Seed, level, entities, screen))
		return
	}

	fmt.Println(screen.String())
	fmt.Println()
	fmt.Printf("Seed: %d  Depth: %d  Rooms: %d  Monsters: %d  Items: %d  Walkable: %d\n",
		rt.Seed, level.Depth, len(level.Rooms),
		len(entities.Monsters()), len(entities.Items()), level.Grid.WalkableCount())

	if flagCheck {
		if dungeon.AllRoomsReachable(level.Grid, player.Pos(), level.Rooms) {
			fmt.Println("Connectivity: every room is reachable")
			return
		}
		fmt.Println("Connectivity: some rooms are unreachable")
		os.Exit(2)
	}
}

func dumpFloor(seed int64, level *dungeon.Level, entities *entity.List, screen *core.Screen) error {
	d := floorDump{
		Seed:   seed,
		Depth:  level.Depth,
		Width:  level.Grid.W,
		Height: level.Grid.H,
	}
	for _, r := range level.Rooms {
		d.Rooms = append(d.Rooms, roomDump{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2})
	}
	for _, e := range entities.All() {
		d.Entities = append(d.Entities, entityDump{Name: e.Name, Kind: e.Kind, X: e.X, Y: e.Y})
	}
	for y := 0; y < screen.Height(); y++ {
		d.Map = append(d.Map, screen.Row(y))
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
