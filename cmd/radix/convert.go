package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radix"
)

var (
	convertFrom         string
	convertTo           string
	convertFromAlphabet string
	convertToAlphabet   string
	convertFromFold     bool
	convertToFold       bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <text>",
	Short: "Re-render a digit string in another base",
	Long: `Convert a digit string from one base into another without exposing
the intermediate integer. Both sides accept a preset name or a custom
alphabet.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "base16", "source preset name")
	convertCmd.Flags().StringVar(&convertTo, "to", "base62", "target preset name")
	convertCmd.Flags().StringVar(&convertFromAlphabet, "from-alphabet", "", "custom source alphabet (overrides --from)")
	convertCmd.Flags().StringVar(&convertToAlphabet, "to-alphabet", "", "custom target alphabet (overrides --to)")
	convertCmd.Flags().BoolVar(&convertFromFold, "from-fold", false, "match the source case-insensitively with --from-alphabet")
	convertCmd.Flags().BoolVar(&convertToFold, "to-fold", false, "match the target case-insensitively with --to-alphabet")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := resolveAlphabet(convertFrom, convertFromAlphabet, convertFromFold)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	to, err := resolveAlphabet(convertTo, convertToAlphabet, convertToFold)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	out, err := radix.Convert(from, to, args[0])
	if err != nil {
		underlineInvalid(cmd, args[0], err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
