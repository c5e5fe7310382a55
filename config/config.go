// Package config defines the runtime configuration for cunnycode.
package config

import (
	"strings"

	"cunnycode/internal/errors"
)

// Config holds everything a single cunnycode run needs from the command
// line.
type Config struct {
	// ── Input ────────────────────────────────────────────────────────
	Args []string // positional args: a file path or literal text

	// ── Output ───────────────────────────────────────────────────────
	Verbose   int
	ShowTable bool

	// ── Meta ─────────────────────────────────────────────────────────
	ShowVersion bool
	ShowHelp    bool
}

// HasArgs reports whether any positional input was given.
func (c *Config) HasArgs() bool { return len(c.Args) > 0 }

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.ShowTable && c.HasArgs() {
		return &errors.ConfigError{
			Field:   "table",
			Value:   strings.Join(c.Args, " "),
			Message: "takes no input text",
			Hint:    "run " + ProgramName + " --table on its own",
		}
	}
	if c.Verbose > MaxVerbosity {
		return &errors.ConfigError{
			Field:   "verbose",
			Value:   c.Verbose,
			Message: "too many -v flags",
			Hint:    "use -v for tracing or -vv for debug output",
		}
	}
	return nil
}
