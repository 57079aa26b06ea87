// Package main implements the radix command line tool: it renders
// integers as digit strings, parses them back, and re-renders digit
// strings between positional numeral bases.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Convert integers and digit strings between numeral bases",
	Long: `radix renders integers as compact digit strings (base16 through
base64-url, or any custom alphabet), parses them back, and re-renders
digit strings directly between two bases.`,
	// main reports the error once; without these, cobra would print it a
	// second time and push the caret diagnostics off screen with usage.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(basesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
