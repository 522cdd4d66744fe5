// Package term provides terminal detection and global color state.
//
// Color is resolved once at startup from the configured mode, TTY
// detection, and the NO_COLOR convention. Both the logger and the
// lipgloss styles consult the result, so the whole process agrees on
// whether to emit ANSI sequences.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"cascade/internal/config"
)

var enabled bool

// Configure resolves the color mode and pins the lipgloss renderer to a
// matching profile. Call once during startup (from [logging.New]).
func Configure(mode config.ColorMode) {
	enabled = resolve(mode)
	if !enabled {
		lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)
	} else if mode == config.ColorAlways {
		lipgloss.DefaultRenderer().SetColorProfile(termenv.ANSI256)
	}
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the
// configured mode, TTY detection, and the NO_COLOR env var
// (https://no-color.org). Logs go to stderr, so that is the stream
// detected.
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stderr) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
