package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radix"
)

var basesCmd = &cobra.Command{
	Use:   "bases",
	Short: "List the built-in alphabets",
	Args:  cobra.NoArgs,
	RunE:  runBases,
}

func runBases(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIX\tMATCHING\tSYMBOLS")
	for _, name := range radix.PresetNames() {
		a, _ := radix.Preset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", name, a.Radix(), a.Case(), a.Symbols())
	}
	return w.Flush()
}
