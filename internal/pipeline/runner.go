// Package pipeline orchestrates puzzle discovery, per-file solving, and
// batch summary reporting.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cascade/internal/config"
	"cascade/internal/display"
	"cascade/internal/driver"
	"cascade/internal/logging"
	"cascade/internal/naming"
	"cascade/internal/solver"
)

// Run is the top-level batch entry point. It discovers puzzle files,
// solves each one sequentially, and returns aggregate stats. A failed
// puzzle never aborts the batch.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("Puzzle discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	tracker := naming.NewTracker()

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, path, &stats, tracker)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one puzzle: name → solve → write.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	tracker *naming.Tracker,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	if _, err := os.Stat(path); err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Fprintln(os.Stderr)
		return
	}

	outputPath := naming.SolutionPath(path, cfg.OutputDir)
	if prev, collided := tracker.Claim(path, outputPath); collided {
		log.Warn("Collision: %s and %s both map to %s; the later result wins",
			filepath.Base(prev), basename, filepath.Base(outputPath))
	}
	log.Info("  -> %s", filepath.Base(outputPath))

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			fmt.Fprintln(os.Stderr)
			return
		}
	}

	if cfg.DryRun {
		if cfg.DriverCmd != "" {
			log.Success("[DRY] Would solve via driver: %s", cfg.DriverCmd)
		} else {
			log.Success("[DRY] Would solve via %s search", cfg.Strategy)
		}
		stats.Planned++
		fmt.Fprintln(os.Stderr)
		return
	}

	fileCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		fileCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		doc      []byte
		quotaMet = true
		swaps    int
		nodes    int
	)
	start := time.Now()

	if cfg.DriverCmd != "" {
		res := driver.Run(fileCtx, cfg.DriverCmd, path, cfg.Verbose)
		if res.Err != nil {
			logSolveFailure(fileCtx, cfg, log, fmt.Errorf("driver: %w", res.Err), res.Stderr)
			stats.Failed++
			fmt.Fprintln(os.Stderr)
			return
		}
		doc = res.Stdout
		log.Success("Driver solved in %s", display.FormatDuration(time.Since(start)))
	} else {
		result, err := solver.SolveFile(fileCtx, path, cfg.Strategy)
		if err != nil {
			logSolveFailure(fileCtx, cfg, log, err, "")
			stats.Failed++
			fmt.Fprintln(os.Stderr)
			return
		}
		doc = result.Document()
		quotaMet = result.Search.QuotaMet
		swaps = len(result.Search.Swaps)
		nodes = result.Search.Expanded
		if quotaMet {
			log.Success("Solved in %s (%d swaps, %s nodes)",
				display.FormatDuration(result.Elapsed), swaps, display.FormatCount(nodes))
		} else {
			log.Warn("Quota not reached: best score %d of %d after %d swaps",
				result.Search.Score, result.Puzzle.Quota, swaps)
		}
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		fmt.Fprintln(os.Stderr)
		return
	}
	if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
		log.Error("Cannot write solution: %v", err)
		stats.Failed++
		fmt.Fprintln(os.Stderr)
		return
	}

	stats.Elapsed += elapsed
	stats.TotalSwaps += swaps
	stats.NodesExpanded += nodes
	if quotaMet {
		stats.Solved++
	} else {
		stats.BestEffort++
	}
	fmt.Fprintln(os.Stderr)
}

// logSolveFailure distinguishes per-file timeouts and batch interrupts
// from ordinary solve errors.
func logSolveFailure(ctx context.Context, cfg *config.Config, log *logging.Logger, err error, stderr string) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		log.Error("Solve timed out after %s", cfg.Timeout)
	case ctx.Err() != nil:
		log.Warn("Interrupted")
	default:
		log.Error("Solve failed: %v", err)
		logStderr(log, stderr)
	}
}

func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last driver output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d puzzles", stats.Total)

	if cfg.DriverCmd != "" {
		log.Info("Solver: driver '%s'", cfg.DriverCmd)
	} else {
		log.Info("Solver: native %s search", cfg.Strategy)
	}

	if cfg.OutputDir != "" {
		log.Info("Output: %s", cfg.OutputDir)
	} else {
		log.Info("Output: alongside each puzzle")
	}
	if cfg.Timeout > 0 {
		log.Info("Timeout: %s per puzzle", cfg.Timeout)
	}
	if cfg.SkipExisting {
		log.Info("Skip policy: existing solutions are kept")
	}
	if cfg.DryRun {
		log.Info("Dry run: no solutions will be written")
	}
	fmt.Fprintln(os.Stderr)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	if cfg.DryRun {
		log.Info("Done: %d planned (dry run), %d skipped, %d failed",
			stats.Planned, stats.Skipped, stats.Failed)
		return
	}

	log.Info("Done: %d solved, %d best effort, %d skipped, %d failed",
		stats.Solved, stats.BestEffort, stats.Skipped, stats.Failed)
	log.Info("Summary report:")
	log.Info("  Total puzzles processed: %d", stats.Current)
	if stats.TotalSwaps > 0 || stats.NodesExpanded > 0 {
		log.Info("  Total swaps: %d, nodes expanded: %s",
			stats.TotalSwaps, display.FormatCount(stats.NodesExpanded))
	}
	if stats.Elapsed > 0 {
		log.Info("  Solve time: %s", display.FormatDuration(stats.Elapsed))
	}
}
