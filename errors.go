package radix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRadixTooSmall indicates an alphabet with fewer than two symbols.
	ErrRadixTooSmall = errors.New("radix: alphabet must hold at least two symbols")
	// ErrDuplicateSymbol indicates an alphabet in which a symbol repeats.
	ErrDuplicateSymbol = errors.New("radix: duplicate symbol in alphabet")
	// ErrEmptyString indicates a Decode or Convert call on the empty string.
	ErrEmptyString = errors.New("radix: cannot decode an empty string")
)

// InvalidChar is one character of a Decode input that matched no symbol
// of the alphabet. Index is its rune position within the input (not the
// byte offset) and Char is the character exactly as it appeared, before
// any case folding.
type InvalidChar struct {
	Index int
	Char  rune
}

// InvalidCharsError reports every character of a Decode input that lies
// outside the alphabet, in input order. Retrieve it with errors.As to
// render position-aware diagnostics.
type InvalidCharsError struct {
	Chars []InvalidChar
}

func (e *InvalidCharsError) Error() string {
	if len(e.Chars) == 1 {
		c := e.Chars[0]
		return fmt.Sprintf("radix: invalid character %q at index %d", c.Char, c.Index)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "radix: %d invalid characters:", len(e.Chars))
	for i, c := range e.Chars {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %q at index %d", c.Char, c.Index)
	}
	return b.String()
}
