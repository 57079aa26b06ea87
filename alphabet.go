package radix

import "fmt"

// Case selects how an Alphabet matches input characters during Decode.
//
//   - CaseSensitive: a digit matches only its exact symbol.
//   - CaseInsensitive: input characters are lower-cased before lookup;
//     the alphabet's own symbols are never folded.
type Case int

const (
	// CaseSensitive mode: exact matching, 'A' and 'a' are distinct digits.
	CaseSensitive Case = iota

	// CaseInsensitive mode: input is lower-cased before matching, so "FE0F"
	// and "fe0f" decode alike against a lowercase alphabet.
	CaseInsensitive
)

// String returns a human-readable name for the matching mode.
func (c Case) String() string {
	switch c {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// Alphabet is an immutable, ordered set of digit symbols defining a
// positional numeral base. The first symbol carries value 0, the second
// value 1, and so on; the radix is the number of symbols.
//
// The zero value is unusable: obtain an Alphabet from New, MustNew or a
// preset such as Base62.
type Alphabet struct {
	symbols []rune
	lookup  map[rune]int
	mode    Case
}

// New builds an Alphabet from the symbols string, in value order.
// Symbols are runes, so multi-byte characters act as single digits.
//
// The alphabet must hold at least two distinct symbols; otherwise New
// reports ErrRadixTooSmall or ErrDuplicateSymbol.
//
// mode controls Decode matching only; see Case.
func New(symbols string, mode Case) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 {
		return Alphabet{}, fmt.Errorf("%w: got %d in %q", ErrRadixTooSmall, len(runes), symbols)
	}
	lookup := make(map[rune]int, len(runes))
	for i, r := range runes {
		if prev, ok := lookup[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateSymbol, r, prev, i)
		}
		lookup[r] = i
	}
	return Alphabet{symbols: runes, lookup: lookup, mode: mode}, nil
}

// MustNew is like New but panics on error. It suits package-level
// alphabet variables.
func MustNew(symbols string, mode Case) Alphabet {
	a, err := New(symbols, mode)
	if err != nil {
		panic(err)
	}
	return a
}

// Radix returns the number of symbols in the alphabet.
func (a Alphabet) Radix() int { return len(a.symbols) }

// Symbols returns the alphabet's symbols in value order.
func (a Alphabet) Symbols() string { return string(a.symbols) }

// Case returns the matching mode applied by Decode.
func (a Alphabet) Case() Case { return a.mode }
