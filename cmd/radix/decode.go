package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radix"
)

var (
	decodeBase     string
	decodeAlphabet string
	decodeFold     bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <text>",
	Short: "Parse a digit string back into an integer",
	Long: `Parse a digit string in the chosen base and print its decimal value.
Characters outside the alphabet are underlined, every one of them.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeBase, "base", "base62", "preset alphabet name")
	decodeCmd.Flags().StringVar(&decodeAlphabet, "alphabet", "", "custom alphabet symbols (overrides --base)")
	decodeCmd.Flags().BoolVar(&decodeFold, "fold", false, "match case-insensitively with --alphabet")
}

func runDecode(cmd *cobra.Command, args []string) error {
	a, err := resolveAlphabet(decodeBase, decodeAlphabet, decodeFold)
	if err != nil {
		return err
	}
	v, err := radix.Decode(a, args[0])
	if err != nil {
		underlineInvalid(cmd, args[0], err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

// underlineInvalid echoes the input with a caret under each offending
// rune when err carries character positions; other errors print nothing.
func underlineInvalid(cmd *cobra.Command, input string, err error) {
	var bad *radix.InvalidCharsError
	if !errors.As(err, &bad) {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), input)
	fmt.Fprintln(cmd.ErrOrStderr(), caretLine(input, bad))
}

// caretLine draws a '^' under every offending rune of input, aligning by
// rune position and trimming past the last caret.
func caretLine(input string, bad *radix.InvalidCharsError) string {
	marks := make(map[int]bool, len(bad.Chars))
	for _, c := range bad.Chars {
		marks[c.Index] = true
	}
	line := make([]rune, 0, len(input))
	last := -1
	idx := 0
	for range input {
		if marks[idx] {
			line = append(line, '^')
			last = idx
		} else {
			line = append(line, ' ')
		}
		idx++
	}
	return string(line[:last+1])
}
