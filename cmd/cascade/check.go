package main

import (
	"github.com/spf13/cobra"

	"cascade/internal/check"
	"cascade/internal/config"
	"cascade/internal/display"
	"cascade/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check [input-dir]",
	Short: "Run system diagnostics",
	Long: `check solves a built-in puzzle with every search strategy, resolves
the configured driver command on PATH, and probes the input and output
directories. Informational only; it always exits 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	check.RunCheck(cmd.Context(), &cfg, log)
	return nil
}
