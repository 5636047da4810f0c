package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tszsolve/tszsolve/internal/scenario"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

var checkCmd = &cobra.Command{
	Use:   "check <scenario.toml>",
	Short: "Run the [[check]] assignability queries in a scenario file",
	Long: `check loads a scenario file's [[type]] declarations into a fresh
interner, evaluates every [[check]] query against it, and reports whether
each query's observed verdict matched the expected one.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	color.NoColor = !useColor(cmd)

	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	env, err := scenario.Build(f)
	if err != nil {
		return err
	}
	results, err := scenario.Run(env, f.Checks)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, r := range results {
		label := r.Name
		if label == "" {
			label = fmt.Sprintf("%s <: %s", r.Source, r.Target)
		}
		if r.Pass {
			fmt.Fprintf(out, "%s %s\n", passColor.Sprint("PASS"), label)
			continue
		}
		failures++
		fmt.Fprintf(out, "%s %s (want %v, got %v)\n", failColor.Sprint("FAIL"), label, r.Expect, r.Got)
		if !r.Got {
			fmt.Fprintf(out, "     %s\n", scenario.DescribeFailure(env.Interner, r.FailReason))
		}
	}

	fmt.Fprintf(out, "\n%d passed, %d failed\n", len(results)-failures, failures)
	if failures > 0 {
		return fmt.Errorf("%d of %d checks failed", failures, len(results))
	}
	return nil
}
