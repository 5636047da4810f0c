package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tszsolve/tszsolve/internal/scenario"
	"github.com/tszsolve/tszsolve/internal/typeset"
)

var nameColor = color.New(color.FgYellow, color.Bold)

var describeCmd = &cobra.Command{
	Use:   "describe <scenario.toml> [name]",
	Short: "Print a scenario's normalized type labels",
	Long: `describe loads a scenario file's [[type]] declarations and prints the
normalized label of each one (or just the named one, if given), plus a few
structural query flags.`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE:         runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	color.NoColor = !useColor(cmd)

	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	env, err := scenario.Build(f)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(env.Names))
	if len(args) == 2 {
		if _, ok := env.Names[args[1]]; !ok {
			return fmt.Errorf("describe: unknown type %q", args[1])
		}
		names = append(names, args[1])
	} else {
		for _, ts := range f.Types {
			names = append(names, ts.Name)
		}
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		id := env.Names[name]
		fmt.Fprintf(out, "%s = %s\n", nameColor.Sprint(name), typeset.Label(env.Interner, id))
		fmt.Fprintf(out, "    array=%v tuple=%v fresh=%v contains_error=%v\n",
			env.Interner.IsArrayType(id),
			env.Interner.IsTupleType(id),
			env.Interner.IsFreshObject(id),
			env.Interner.ContainsErrorType(id),
		)
	}
	return nil
}
