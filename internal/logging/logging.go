// ABOUTME: Structured logging setup shared by every command
// ABOUTME: Logs go to stderr so stdout stays clean for the console and MCP traffic
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Init configures the default logger with the given level and format.
// If w is nil, os.Stderr is used. Format must be "text" or "json".
func Init(level, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	}
	switch format {
	case "json":
		opts.Formatter = log.JSONFormatter
	case "text", "":
		opts.Formatter = log.TextFormatter
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	log.SetDefault(log.NewWithOptions(w, opts))
	return nil
}

// New returns a logger with a "component" field for module-scoped logging
func New(component string) *log.Logger {
	return log.Default().With("component", component)
}

// Discard returns a logger that drops everything, for tests
func Discard() *log.Logger {
	return log.New(io.Discard)
}
