// Package logging builds the charmbracelet logger used across delve, with an
// optional size-rotated log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/delve/internal/config"
)

// LevelEnv overrides the configured level when set.
const LevelEnv = "LOG_LEVEL"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger. When cfg.File is set the output goes to a rotating
// file (the terminal is left alone, which interactive modes need); otherwise
// it goes to fallback. The returned Closer releases the file.
func New(cfg config.LoggingConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = fallback
		closer io.Closer = nopCloser{}
	)
	if out == nil {
		out = io.Discard
	}

	if cfg.File != "" {
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out, closer = lj, lj
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "delve",
		Level:           level,
	})
	return logger, closer, nil
}

func parseLevel(configured string) (log.Level, error) {
	s := configured
	if env := os.Getenv(LevelEnv); env != "" {
		s = env
	}
	if s == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
