package radix

import "unicode"

// Decode parses s as a digit string in the positional base described by
// a and returns its integer value.
//
// Algorithm Outline:
//  1. Reject the empty string with ErrEmptyString.
//  2. Walk the input rune by rune. Under CaseInsensitive each input rune
//     is lower-cased before lookup; the recorded character stays as typed.
//  3. Accumulate value = value*radix + digit for every match; collect an
//     InvalidChar for every miss.
//  4. If any rune missed, return an InvalidCharsError listing all of them
//     in input order. The partially accumulated value is discarded.
//
// Indices inside InvalidCharsError count runes, not bytes, so they line
// up with the characters a user sees.
//
// Values wider than 63 bits silently wrap; inputs of up to 10 base62
// digits (or 15 base16 digits) are always exact.
//
// Complexity: O(n) over input runes, one map lookup per rune.
func Decode(a Alphabet, s string) (int64, error) {
	if s == "" {
		return 0, ErrEmptyString
	}

	var (
		n     = int64(len(a.symbols))
		value int64
		bad   []InvalidChar
		idx   int
	)
	for _, r := range s {
		c := r
		if a.mode == CaseInsensitive {
			c = unicode.ToLower(r)
		}
		if d, ok := a.lookup[c]; ok {
			value = value*n + int64(d)
		} else {
			bad = append(bad, InvalidChar{Index: idx, Char: r})
		}
		idx++
	}
	if bad != nil {
		return 0, &InvalidCharsError{Chars: bad}
	}
	return value, nil
}
