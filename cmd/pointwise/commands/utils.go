// ABOUTME: Shared setup for CLI commands
// ABOUTME: Loads .env and config, initializes logging and builds the state machine
package commands

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/harper/pointwise/internal/automaton"
	"github.com/harper/pointwise/internal/config"
	"github.com/harper/pointwise/internal/logging"
	"github.com/harper/pointwise/internal/points"
	"github.com/harper/pointwise/internal/render"
)

var outputFormats = []string{"auto", "table", "json", "yaml"}

// setup loads configuration and initializes the default logger.
// --verbose and --quiet override the configured log level.
func setup() (*config.Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := logging.Init(logLevel(cfg.LogLevel), cfg.LogFormat, nil); err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	return cfg, nil
}

func logLevel(configured string) string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	}
	return configured
}

// newMachine builds the state machine for one front end
func newMachine(cfg *config.Config, r render.Renderer, maxCount int) *automaton.Machine {
	return automaton.New(automaton.Options{
		Renderer:     r,
		Generator:    points.NewGenerator(cfg.RandomMin, cfg.RandomMax, nil),
		DefaultCount: cfg.DefaultCount,
		MaxCount:     maxCount,
		Logger:       logging.New("automaton"),
	})
}

// validateFormat returns an error for an unsupported --format value
func validateFormat(format string) error {
	if !containsString(outputFormats, format) {
		return fmt.Errorf("unknown format %q (want auto, table, json or yaml)", format)
	}
	return nil
}

// containsString checks if a slice contains a string
func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
