package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/delve/internal/config"
	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/logging"
)

// app holds what every subcommand needs after flags are parsed.
type app struct {
	cfg     config.DungeonConfig
	palette *core.Palette
	logger  *log.Logger
	closer  io.Closer
}

// newApp loads and validates the configuration, applies global flags and
// builds the logger. interactive sends logs to a file so they do not draw over
// the terminal UI.
func newApp(interactive bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyDifficultyPreset(&cfg, preset)
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if interactive && cfg.Logging.File == "" {
		if dir := config.UserDir(); dir != "" {
			cfg.Logging.File = filepath.Join(dir, "delve.log")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	palette, err := cfg.NewPalette()
	if err != nil {
		return nil, err
	}

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	logger, closer, err := logging.New(cfg.Logging, fallback)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, palette: palette, logger: logger, closer: closer}, nil
}

// Close releases the log file.
func (a *app) Close() {
	if err := a.closer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing log: %v\n", err)
	}
}

// runtimeConfig resolves the seed and the screen size for a session.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW, cfg.ScreenH = width, height
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// exitOnError prints err and exits when it is non-nil.
func exitOnError(context string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
		os.Exit(1)
	}
}
