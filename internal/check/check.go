// Package check provides system diagnostics (the check command) and
// pre-batch dependency validation (CheckDeps) for the solver and the
// optional external driver.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"cascade/internal/config"
	"cascade/internal/driver"
	"cascade/internal/pipeline"
	"cascade/internal/search"
	"cascade/internal/solver"
)

// Sentinel errors returned by CheckDeps when the configured driver cannot run.
var (
	ErrDriverNotFound = errors.New("driver command not found on PATH")
)

// selfTestPuzzle is a 3x5 board with a two-row pool and exactly one valid
// move; every strategy must reach its quota of 3 in a single swap.
const selfTestPuzzle = `3
2
9
3
5
2
0
1 2 3
4 5 6
3 8 5
3 5 6
5 3 7
`

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the check command flow: solve a built-in puzzle with every
// strategy, resolve the configured driver, and probe the input and output
// directories. This is informational only, it does not stop on failure.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkSolver(ctx, log)
	checkDriver(cfg, log)
	checkDirs(cfg, log)
}

// checkSolver runs the built-in self-test puzzle through each strategy.
func checkSolver(ctx context.Context, log Logger) {
	log.Info("Solver self-test:")
	for _, s := range search.Strategies() {
		res, err := solver.Solve(ctx, []byte(selfTestPuzzle), s)
		if err != nil {
			log.Error("  %s: %v", s, err)
			continue
		}
		if !res.Search.QuotaMet {
			log.Error("  %s: quota missed (score %d)", s, res.Search.Score)
			continue
		}
		log.Success("  %s: quota reached with %d swap(s), %d nodes expanded",
			s, len(res.Search.Swaps), res.Search.Expanded)
	}
}

// checkDriver resolves the configured driver command on PATH.
func checkDriver(cfg *config.Config, log Logger) {
	if cfg.DriverCmd == "" {
		log.Info("Driver: none configured (native solver)")
		return
	}
	argv := driver.Split(cfg.DriverCmd)
	resolved, err := exec.LookPath(argv[0])
	if err != nil {
		log.Error("Driver not found: %s", argv[0])
		return
	}
	log.Success("Driver: %s (%s)", cfg.DriverCmd, resolved)
}

// checkDirs verifies the input directory is readable and the effective
// output directory is writable.
func checkDirs(cfg *config.Config, log Logger) {
	if _, err := os.ReadDir(cfg.InputDir); err != nil {
		log.Error("Input dir not readable: %v", err)
	} else {
		files, _ := pipeline.Discover(cfg.InputDir)
		log.Success("Input dir: %s (%d puzzle files)", cfg.InputDir, len(files))
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = cfg.InputDir
	}
	if err := probeWritable(outDir); err != nil {
		log.Error("Output dir not writable: %v", err)
	} else {
		log.Success("Output dir: %s (writable)", outDir)
	}
}

// probeWritable creates and removes a scratch file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".cascade-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// CheckDeps is the pre-batch validation: when a driver command is
// configured, its binary must resolve on PATH. The native solver needs
// nothing external. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if cfg.DriverCmd == "" {
		return nil
	}
	argv := driver.Split(cfg.DriverCmd)
	if len(argv) == 0 {
		return ErrDriverNotFound
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%w: %s", ErrDriverNotFound, argv[0])
	}
	return nil
}

