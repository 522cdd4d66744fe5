// Package logging wraps zerolog behind the small leveled surface the
// rest of the program uses: printf-style Info, Success, Warn, Error and
// Debug, plus an optional plain-text file sink next to the console.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"cascade/internal/config"
	"cascade/internal/term"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger is a thin facade over zerolog. Console output goes to stderr
// so solution documents on stdout stay clean.
type Logger struct {
	z    zerolog.Logger
	file *os.File
}

// New initializes colors from cfg and optionally opens cfg.LogFile.
// Call Close when done if LogFile was set.
func New(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
		NoColor:    !term.Enabled(),
	}

	var (
		sink io.Writer = console
		file *os.File
	)
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		file = f
		sink = zerolog.MultiLevelWriter(console, fileWriter(f))
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	z := zerolog.New(sink).Level(level).With().Timestamp().Logger()
	return &Logger{z: z, file: file}, nil
}

// fileWriter renders uncolored "ts [LEVEL] message" lines so the log
// file reads like the legacy script's output.
func fileWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: timeFormat,
		NoColor:    true,
		FormatLevel: func(i interface{}) string {
			if s, ok := i.(string); ok {
				return "[" + strings.ToUpper(s) + "]"
			}
			return "[?]"
		},
	}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

// Success logs positive outcomes. Mapped to INFO; zerolog has no
// success level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.z.Warn().Msgf(format, args...)
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.z.Error().Msgf(format, args...)
}

// Debug logs at DEBUG level; filtered out unless verbose enabled it.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.z.Debug().Msgf(format, args...)
}
