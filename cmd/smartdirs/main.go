package main

import (
	"os"

	"github.com/ludo-technologies/smartdirs/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smartdirs",
	Short: "Create uniquely-named directories with smart numbering",
	Long: `smartdirs creates directories with consistent, collision-free names.

It can embed the current date and time into the name and picks an
incrementing numeric prefix or suffix by scanning the existing sibling
directories, so repeated runs never clash:

  1-data, 2-data, 3-data, ...
  report-2025-05-17-1, report-2025-05-17-2, ...

Creations can be recorded in a CSV log file for later review with the
history command.`,
	Version: version.Short(),
}

func init() {
	// Add main subcommands
	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
