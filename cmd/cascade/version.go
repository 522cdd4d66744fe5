package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" they retain these defaults.
var (
	version = "1.1.0"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cascade v%s (%s)\n", version, commit)
	},
}
