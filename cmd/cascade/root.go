package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cascade/internal/check"
	"cascade/internal/config"
	"cascade/internal/display"
	"cascade/internal/logging"
	"cascade/internal/pipeline"
	"cascade/internal/search"
)

var (
	cfgFile          string
	flagOutput       string
	flagStrategy     string
	flagDriver       string
	flagTimeout      time.Duration
	flagDryRun       bool
	flagSkipExisting bool
	flagVerbose      bool
	flagColor        string
	flagLog          string
)

var rootCmd = &cobra.Command{
	Use:   "cascade [input-dir]",
	Short: "Batch solver for match-3 device puzzles",
	Long: `cascade scans a directory for puzzle*.txt files, solves each one, and
writes the solver output to the matching solution<digits>.txt file.

Puzzles are solved by the built-in tree search (astar by default) or,
with --driver, by an external solver command that receives the puzzle
path as its last argument and prints the solution document on stdout.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "JSON config file (flags override file values)")
	pf.StringVarP(&flagStrategy, "strategy", "s", string(search.DefaultStrategy), "search strategy: astar, bfs, iddfs or greedy")
	pf.StringVar(&flagDriver, "driver", "", "external solver command, receives the puzzle path as last argument")
	pf.DurationVar(&flagTimeout, "timeout", 0, "per-puzzle time limit (e.g. 30s); 0 disables")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&flagColor, "color", string(config.ColorAuto), "color output: auto, always or never")
	pf.StringVar(&flagLog, "log", "", "append log output to this file")

	fl := rootCmd.Flags()
	fl.StringVarP(&flagOutput, "output", "o", "", "directory for solution files (default: next to each puzzle)")
	fl.BoolVarP(&flagDryRun, "dry-run", "n", false, "log what would be solved without writing anything")
	fl.BoolVar(&flagSkipExisting, "skip-existing", false, "keep existing solution files instead of re-solving")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildConfig layers defaults, the optional config file, then every flag
// the user set explicitly, in that order.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()

	if cfgFile != "" {
		if err := config.LoadFile(cfgFile, &cfg); err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("output") {
		cfg.OutputDir = flagOutput
	}
	if fl.Changed("strategy") {
		cfg.Strategy = search.Strategy(flagStrategy)
	}
	if fl.Changed("driver") {
		cfg.DriverCmd = flagDriver
	}
	if fl.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if fl.Changed("dry-run") {
		cfg.DryRun = flagDryRun
	}
	if fl.Changed("skip-existing") {
		cfg.SkipExisting = flagSkipExisting
	}
	if fl.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if fl.Changed("color") {
		cfg.ColorMode = config.ColorMode(flagColor)
	}
	if fl.Changed("log") {
		cfg.LogFile = flagLog
	}
	return cfg, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.InputDir = config.NormalizeDirArg(args[0])
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()
	log.Info("=== cascade v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	if cfg.OutputDir != "" {
		log.Info("Out: %s", cfg.OutputDir)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN, no files will be written")
	}
	log.Info("")

	// Fail fast if the configured driver is unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		return err
	}

	// Cancel the context on SIGINT/SIGTERM so the batch stops between
	// files and an in-flight solve aborts.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", stats.Failed, stats.Total)
	}
	return nil
}
