package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/autopong/internal/config"
	"github.com/vovakirdan/autopong/internal/registry"
)

// settings bundles what every simulation command needs before it starts.
type settings struct {
	cfg    config.Config
	runID  string
	logger *log.Logger
	close  func() error
}

// loadSettings reads the config, applies controller overrides, checks the
// controller names and opens the logger. Logs go to the --log-file flag, then log.file from config, then
// fallback. The caller must call close.
func loadSettings(left, right string, fallback io.Writer) (*settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if left != "" {
		cfg.Controllers.Left = left
	}
	if right != "" {
		cfg.Controllers.Right = right
	}
	for _, id := range []string{cfg.Controllers.Left, cfg.Controllers.Right} {
		if !registry.Exists(id) {
			return nil, fmt.Errorf("unknown controller %q (run 'autopong controllers' to list them)", id)
		}
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	w, closeFn := fallback, func() error { return nil }
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	runID := uuid.NewString()
	logger, err := newLogger(w, cfg.Log.Level, runID)
	if err != nil {
		//nolint:errcheck // Already failing
		closeFn()
		return nil, err
	}

	return &settings{cfg: cfg, runID: runID, logger: logger, close: closeFn}, nil
}

// newLogger creates the command logger tagged with the run ID.
func newLogger(w io.Writer, level, runID string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "autopong",
		Level:           lvl,
	})
	return logger.With("run", runID), nil
}
