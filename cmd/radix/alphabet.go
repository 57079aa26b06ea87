package main

import (
	"fmt"

	"github.com/katalvlaran/radix"
)

// lookupPreset resolves a preset name, failing with a hint toward the
// bases subcommand.
func lookupPreset(name string) (radix.Alphabet, error) {
	a, ok := radix.Preset(name)
	if !ok {
		return radix.Alphabet{}, fmt.Errorf("unknown base %q; run \"radix bases\" for the list", name)
	}
	return a, nil
}

// resolveAlphabet picks the working alphabet from the shared flags:
// --alphabet wins when set (with --fold choosing the matching mode),
// otherwise the --base preset name is looked up.
func resolveAlphabet(preset, symbols string, fold bool) (radix.Alphabet, error) {
	if symbols != "" {
		mode := radix.CaseSensitive
		if fold {
			mode = radix.CaseInsensitive
		}
		return radix.New(symbols, mode)
	}
	return lookupPreset(preset)
}
