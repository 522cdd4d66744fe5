// Command cascade is the batch match-3 puzzle solver CLI.
//
// Invoked bare it solves every puzzle*.txt in the current directory and
// writes the solver output to the matching solution<digits>.txt file.
// Subcommands solve a single puzzle to stdout, run system diagnostics,
// and print version information.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
