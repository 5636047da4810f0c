package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tszsolve/tszsolve/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tszsolve",
	Short: "A TypeScript-style structural type solver",
	Long:  `tszsolve interns, normalizes, and compares structural types from a declarative scenario file.`,
}

// main registers subcommands, sets the version, and executes the root
// command, exiting with status 1 on failure.
func main() {
	rootCmd.Version = version.VersionString()

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// useColor resolves the --color flag against whether stdout is a terminal.
func useColor(cmd *cobra.Command) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
}
