package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/delve/internal/dungeon"
	"github.com/vovakirdan/delve/internal/msglog"
	"github.com/vovakirdan/delve/internal/platform/tui"
	"github.com/vovakirdan/delve/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore the dungeon in your terminal",
	Long: `Start a descent. Every floor you reach is recorded in the run journal.

Controls:
  Arrows/hjkl - Move
  Space/.     - Wait a turn
  g           - Use the item underfoot
  >           - Take the stairs down
  m           - Toggle the full map
  ?           - More keys
  q/Ctrl+C    - Quit

Difficulty options:
  easy   - Deep monsters and items arrive one floor later
  normal - Stock tables
  hard   - Deep monsters and items arrive two floors sooner

Examples:
  delve play
  delve play --seed 1234
  delve play --difficulty hard
  delve play --config ./my-dungeon.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	a, err := newApp(true)
	exitOnError("loading config", err)
	defer a.Close()

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := runtimeConfig(width, height)

	plan := a.cfg.PlanParams()
	needH := plan.MapHeight + a.cfg.Log.Height + 2
	if rt.ScreenW < plan.MapWidth || rt.ScreenH < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the dungeon needs %dx%d\n",
			rt.ScreenW, rt.ScreenH, plan.MapWidth, needH)
	}

	opts := []dungeon.Option{
		dungeon.WithSeed(rt.Seed),
		dungeon.WithLogger(a.logger),
	}

	// The journal is optional: play on without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open journal", "dsn", flagDBPath, "error", err)
	} else {
		defer store.Close()
		runID, err := store.StartRun(rt.Seed, string(a.cfg.Difficulty))
		if err != nil {
			a.logger.Warn("could not start run", "error", err)
		} else {
			opts = append(opts, dungeon.WithJournal(store.Journal(runID)))
			a.logger.Info("run started", "run", runID, "seed", rt.Seed)
		}
	}

	messages := msglog.New(tui.PanelWidth, a.cfg.Log.Width, a.cfg.Log.Height)
	gen := dungeon.NewGenerator(a.cfg.Settings(), a.palette, opts...)
	explorer, err := tui.NewExplorer(gen, a.cfg.PlayerStats(), messages, a.palette, a.logger)
	exitOnError("starting explorer", err)

	exitOnError("running explorer", tui.Run(explorer, messages, a.palette, a.logger))

	fmt.Printf("Seed %d: reached dungeon level %d in %d turns.\n", rt.Seed, explorer.Deepest(), explorer.Turns())
}

