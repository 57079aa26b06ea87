package radix_test

import (
	"testing"

	"github.com/katalvlaran/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecode_KnownValues pins Decode against hand-checked values,
// covering both letter cases for the case-agnostic presets.
func TestDecode_KnownValues(t *testing.T) {
	cases := []struct {
		name  string
		base  radix.Alphabet
		input string
		value int64
	}{
		{"base16 abe0", radix.Base16, "abe0", 44000},
		{"base16 ABE0", radix.Base16, "ABE0", 44000},
		{"base16 fe0f", radix.Base16, "fe0f", 65039},
		{"base16 FE0F", radix.Base16, "FE0F", 65039},
		{"base32 s5od", radix.Base32, "s5od", 923405},
		{"base32 S5OD", radix.Base32, "S5OD", 923405},
		{"base32-rfc 4fyn", radix.Base32RFC, "4fyn", 923405},
		{"base32-rfc 4FYN", radix.Base32RFC, "4FYN", 923405},
		{"base36 19mb2f", radix.Base36, "19mb2f", 76623495},
		{"base36 19MB2F", radix.Base36, "19MB2F", 76623495},
		{"base58 q3r8", radix.Base58, "q3r8", 9374953},
		{"base62 dKqv", radix.Base62, "dKqv", 9374953},
	}
	for _, tc := range cases {
		got, err := radix.Decode(tc.base, tc.input)
		assert.NoError(t, err, tc.name)
		assert.Equal(t, tc.value, got, tc.name)
	}
}

// TestDecode_CaseSensitiveDistinguishes verifies that a case-sensitive
// alphabet assigns different values to 'A' and 'a'.
func TestDecode_CaseSensitiveDistinguishes(t *testing.T) {
	upper, err := radix.Decode(radix.Base62, "A")
	assert.NoError(t, err)
	assert.Equal(t, int64(10), upper)

	lower, err := radix.Decode(radix.Base62, "a")
	assert.NoError(t, err)
	assert.Equal(t, int64(36), lower)
}

// TestDecode_EmptyString verifies that the empty string always fails
// with ErrEmptyString, in every preset and even on a zero Alphabet.
func TestDecode_EmptyString(t *testing.T) {
	for _, name := range radix.PresetNames() {
		a, ok := radix.Preset(name)
		require.True(t, ok, "preset %s must exist", name)
		v, err := radix.Decode(a, "")
		assert.ErrorIs(t, err, radix.ErrEmptyString, "%s: empty input must be rejected", name)
		assert.Equal(t, int64(0), v)
	}

	_, err := radix.Decode(radix.Alphabet{}, "")
	assert.ErrorIs(t, err, radix.ErrEmptyString, "emptiness is checked before any symbol lookup")
}

// TestDecode_CollectsAllInvalidChars verifies that every offending
// character is reported, with its rune index, in input order.
func TestDecode_CollectsAllInvalidChars(t *testing.T) {
	_, err := radix.Decode(radix.Base16, "owo")

	var bad *radix.InvalidCharsError
	require.ErrorAs(t, err, &bad)
	want := []radix.InvalidChar{
		{Index: 0, Char: 'o'},
		{Index: 1, Char: 'w'},
		{Index: 2, Char: 'o'},
	}
	assert.Equal(t, want, bad.Chars)
}

// TestDecode_MixedValidAndInvalid verifies that valid digits between the
// offenders do not disturb reported positions, and that the partial
// value is discarded.
func TestDecode_MixedValidAndInvalid(t *testing.T) {
	v, err := radix.Decode(radix.Base16, "0g1h")

	var bad *radix.InvalidCharsError
	require.ErrorAs(t, err, &bad)
	want := []radix.InvalidChar{
		{Index: 1, Char: 'g'},
		{Index: 3, Char: 'h'},
	}
	assert.Equal(t, want, bad.Chars)
	assert.Equal(t, int64(0), v, "no partial value on error")
}

// TestDecode_ReportsOriginalCase verifies that a case-insensitive
// alphabet records the character as typed, not its folded form.
func TestDecode_ReportsOriginalCase(t *testing.T) {
	_, err := radix.Decode(radix.Base16, "aXe")

	var bad *radix.InvalidCharsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, []radix.InvalidChar{{Index: 1, Char: 'X'}}, bad.Chars)
}

// TestDecode_RuneIndices verifies that indices count runes, not bytes:
// a three-byte '€' still advances the index by one.
func TestDecode_RuneIndices(t *testing.T) {
	_, err := radix.Decode(radix.Base16, "€x")

	var bad *radix.InvalidCharsError
	require.ErrorAs(t, err, &bad)
	want := []radix.InvalidChar{
		{Index: 0, Char: '€'},
		{Index: 1, Char: 'x'},
	}
	assert.Equal(t, want, bad.Chars)
}

// TestDecode_FoldsInputNotAlphabet verifies the folding direction: under
// CaseInsensitive the input is lower-cased, the symbols are not, so an
// uppercase alphabet matches nothing.
func TestDecode_FoldsInputNotAlphabet(t *testing.T) {
	a := radix.MustNew("ABC", radix.CaseInsensitive)

	for _, input := range []string{"ABC", "abc"} {
		_, err := radix.Decode(a, input)
		var bad *radix.InvalidCharsError
		require.ErrorAs(t, err, &bad, "input %q must miss the uppercase symbols", input)
		assert.Len(t, bad.Chars, 3, "input %q", input)
	}
}

// TestDecode_ErrorMessages verifies the rendered forms for one and for
// several invalid characters.
func TestDecode_ErrorMessages(t *testing.T) {
	_, err := radix.Decode(radix.Base16, "0w0")
	require.Error(t, err)
	assert.Equal(t, "radix: invalid character 'w' at index 1", err.Error())

	_, err = radix.Decode(radix.Base16, "owo")
	require.Error(t, err)
	assert.Equal(t,
		"radix: 3 invalid characters: 'o' at index 0, 'w' at index 1, 'o' at index 2",
		err.Error())
}

// TestDecode_ZeroValueAlphabet verifies that decoding against a zero
// Alphabet reports every character instead of panicking.
func TestDecode_ZeroValueAlphabet(t *testing.T) {
	_, err := radix.Decode(radix.Alphabet{}, "abc")

	var bad *radix.InvalidCharsError
	require.ErrorAs(t, err, &bad)
	assert.Len(t, bad.Chars, 3)
}
