package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/delve/internal/dungeon"
	"github.com/vovakirdan/delve/internal/msglog"
	"github.com/vovakirdan/delve/internal/platform/tui"
	"github.com/vovakirdan/delve/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the delve SSH server",
	Long: `Start an SSH server that lets users connect and explore.

Each SSH connection gets its own dungeon. With --seed every session starts
from the same seed plus its session number; otherwise seeds come from the clock.
All sessions share the run journal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.delve/host_key

Examples:
  delve serve                           # Listen on :23234 with auto-generated key
  delve serve --ssh :2222               # Listen on port 2222
  delve serve --host-key ./my_host_key  # Use specific host key
  delve serve --db postgres://delve@localhost/delve

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	a, err := newApp(false)
	exitOnError("loading config", err)
	defer a.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open journal, runs will not be recorded", "dsn", flagDBPath, "error", err)
	} else {
		defer store.Close()
	}

	var sessions atomic.Int64
	newSession := func(user string) (*tui.Explorer, *msglog.Log, error) {
		n := sessions.Add(1)
		seed := time.Now().UnixNano()
		if flagSeed != 0 {
			seed = flagSeed + n - 1
		}
		logger := a.logger.With("user", user, "session", n)

		opts := []dungeon.Option{
			dungeon.WithSeed(seed),
			dungeon.WithLogger(logger),
		}
		if store != nil {
			runID, err := store.StartRun(seed, string(a.cfg.Difficulty))
			if err != nil {
				logger.Warn("could not start run", "error", err)
			} else {
				opts = append(opts, dungeon.WithJournal(store.Journal(runID)))
				logger = logger.With("run", runID)
			}
		}

		messages := msglog.New(tui.PanelWidth, a.cfg.Log.Width, a.cfg.Log.Height)
		gen := dungeon.NewGenerator(a.cfg.Settings(), a.palette, opts...)
		explorer, err := tui.NewExplorer(gen, a.cfg.PlayerStats(), messages, a.palette, logger)
		if err != nil {
			return nil, nil, err
		}
		return explorer, messages, nil
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, newSession, a.palette, a.logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting delve SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
