package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"cascade/internal/logging"
	"cascade/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a single puzzle and print the solution document",
	Long: `solve runs the built-in search on one puzzle file and prints the
solution document on stdout: the puzzle text, one line per swap, and the
solve time in seconds. Logs go to stderr, so stdout can be redirected to
a solution file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	res, err := solver.SolveFile(ctx, args[0], cfg.Strategy)
	if err != nil {
		return err
	}
	if !res.Search.QuotaMet {
		log.Warn("Quota not reached: best score %d of %d", res.Search.Score, res.Puzzle.Quota)
	}

	_, err = os.Stdout.Write(res.Document())
	return err
}
