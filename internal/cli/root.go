// Package cli implements the command-line interface for voxorient.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "voxorient",
	Short: "Voxel orientation algebra explorer",
	Long: `voxorient - a command-line tool for exploring the cube orientation algebra:
compose rotations and flips, dump the packed-byte encoding of an Orientation,
and cycle through the 24 canonical rotations. There is no subcommand for
remapping face-local UV coordinates.

Each apply invocation is recorded to a local history database so past
explorations can be listed with the history command; the interactive view
records nothing, and recorded entries cannot be replayed.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database file path (default: ~/.voxorient/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from the --db flag, or "" to use the default.
func getDBPath() string {
	return dbPath
}
