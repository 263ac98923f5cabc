package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/delve/internal/platform/tui"
	"github.com/vovakirdan/delve/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Browse recorded runs",
	Long: `Show recent runs from the journal with the deepest floor each reached.
On a terminal this opens an interactive viewer; press enter on a run to see
its floors. With a run id, or when output is piped, plain text is printed.

Examples:
  delve runs
  delve runs --plain --limit 5
  delve runs 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print in plain mode")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print plain text even on a terminal")
}

func runRuns(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	exitOnError("opening journal", err)
	defer store.Close()

	if len(args) == 1 {
		var runID int64
		if _, err := fmt.Sscan(args[0], &runID); err != nil {
			exitOnError("parsing run id", fmt.Errorf("invalid run id %q", args[0]))
		}
		printRun(store, runID)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagRunsPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		exitOnError("running journal viewer", tui.RunJournal(store, width, height))
		return
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	exitOnError("reading runs", err)

	fmt.Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Start one with 'delve play'.")
		return
	}

	fmt.Printf("  %-6s  %-20s  %-10s  %-7s  %-6s  %s\n", "Run", "Seed", "Difficulty", "Deepest", "Floors", "Started")
	fmt.Printf("  %-6s  %-20s  %-10s  %-7s  %-6s  %s\n", "---", "----", "----------", "-------", "------", "-------")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-20d  %-10s  %-7d  %-6d  %s\n",
			r.ID, r.Seed, r.Difficulty, r.Deepest, r.Floors, r.StartedAt.Format("2006-01-02 15:04"))
	}

	if deepest, err := store.DeepestDepth(); err == nil && deepest > 0 {
		fmt.Println()
		fmt.Printf("Deepest floor ever reached: %d\n", deepest)
	}
}

func printRun(store *storage.Store, runID int64) {
	run, err := store.Run(runID)
	exitOnError("reading run", err)
	if run == nil {
		exitOnError("reading run", fmt.Errorf("run %d not found", runID))
	}

	floors, err := store.RunFloors(runID)
	exitOnError("reading floors", err)

	fmt.Printf("Run #%d - seed %d, %s, deepest floor %d\n\n", run.ID, run.Seed, run.Difficulty, run.Deepest)
	fmt.Printf("  %-5s  %-5s  %-8s  %-5s  %-7s  %s\n", "Depth", "Rooms", "Monsters", "Items", "Skipped", "Walkable")
	for _, f := range floors {
		fmt.Printf("  %-5d  %-5d  %-8d  %-5d  %-7d  %d\n", f.Depth, f.Rooms, f.Monsters, f.Items, f.Skipped, f.Walkable)
	}
}
