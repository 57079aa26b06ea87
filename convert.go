package radix

// Convert re-renders the digit string s from one positional base into
// another: it decodes s under from and encodes the value under to.
//
// The output is normalized: leading zero digits vanish and, under a
// case-insensitive source, letter case is canonicalized. Converting a
// string to its own alphabet therefore normalizes rather than copies.
//
// Convert returns Decode's error unchanged (ErrEmptyString or an
// InvalidCharsError) alongside an empty output string.
//
// Complexity: one Decode plus one Encode.
func Convert(from, to Alphabet, s string) (string, error) {
	v, err := Decode(from, s)
	if err != nil {
		return "", err
	}
	return Encode(to, v), nil
}
