package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radix"
)

var (
	encodeBase     string
	encodeAlphabet string
	encodeFold     bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <value>",
	Short: "Render an integer as a digit string",
	Long: `Render a decimal integer in the chosen base, most significant digit
first. Negative values encode by magnitude.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeBase, "base", "base62", "preset alphabet name")
	encodeCmd.Flags().StringVar(&encodeAlphabet, "alphabet", "", "custom alphabet symbols (overrides --base)")
	encodeCmd.Flags().BoolVar(&encodeFold, "fold", false, "match case-insensitively with --alphabet")
}

func runEncode(cmd *cobra.Command, args []string) error {
	a, err := resolveAlphabet(encodeBase, encodeAlphabet, encodeFold)
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not a 64-bit integer: %q", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), radix.Encode(a, v))
	return nil
}
