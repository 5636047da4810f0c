package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tszsolve/tszsolve/internal/version"
)

var (
	commitColor  = color.New(color.FgRed, color.Bold)
	dateColor    = color.New(color.FgCyan, color.Bold)
	unknownColor = color.New(color.FgMagenta)
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tszsolve build fingerprints",
	Run: func(cmd *cobra.Command, args []string) {
		color.NoColor = !useColor(cmd)

		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tszsolve %s\n", v)
		fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", valueOrUnknown(version.GitCommit, commitColor))
		fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", valueOrUnknown(version.BuildDate, dateColor))
	},
}

func valueOrUnknown(s string, col *color.Color) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownColor.Sprint("unknown")
	}
	return col.Sprint(s)
}
