// Gfpint is a terminal client for the gfpint gluten-free beer directory.
//
// It provides venue and beer search, an interactive report wizard, and a
// live feed of reports submitted by other users. All data comes from the
// gfpint REST API; nothing is scraped or cached beyond a single session.
//
// Usage:
//
//	gfpint [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'gfpint --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gfpint/gfpint/internal/logging"
	"github.com/gfpint/gfpint/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gfpint",
	Short: "Gluten Free Beer Finder",
	Long: `A terminal client for the gfpint gluten-free beer directory.

Search venues and beers, report what's pouring where, and follow a live
feed of reports from other users.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gfpint %s (commit: %s)\n", version.Version, version.Commit)
	},
}
