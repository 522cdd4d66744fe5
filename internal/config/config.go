// Package config holds runtime configuration: defaults, the optional
// JSON config file overlay, and validation. The defaults reproduce the
// legacy batch script: solve every puzzle*.txt in the current directory
// and write solutions next to them.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cascade/internal/search"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then mutated by flag handling
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string // Directory scanned for puzzle*.txt. Default: ".".
	OutputDir string // Solution destination. Empty: next to each puzzle.

	// Solving.
	Strategy  search.Strategy // Default: astar.
	DriverCmd string          // External solver command. Empty: built-in solver.
	Timeout   time.Duration   // Per-puzzle limit. Zero: none.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: false. The legacy script always re-solved.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config matching legacy runall.sh behavior.
// Used as the base before the config file and CLI overrides apply.
func DefaultConfig() Config {
	return Config{
		InputDir:  ".",
		Strategy:  search.DefaultStrategy,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and value ranges after all overrides have
// been applied.
func (c *Config) Validate() error {
	if _, err := search.ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s (must not be negative)", c.Timeout)
	}

	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	if strings.TrimSpace(c.DriverCmd) == "" && c.DriverCmd != "" {
		return errors.New("driver command must not be blank")
	}
	return nil
}
