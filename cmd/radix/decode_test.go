package main

import (
	"testing"

	"github.com/katalvlaran/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// caretFor decodes input against base16 and returns the caret line its
// failure produces.
func caretFor(t *testing.T, input string) string {
	t.Helper()
	_, err := radix.Decode(radix.Base16, input)
	var bad *radix.InvalidCharsError
	require.ErrorAs(t, err, &bad, "input %q must fail decoding", input)
	return caretLine(input, bad)
}

// TestCaretLine_MarksEveryOffender covers a single caret, a full row of
// carets, and trimming after the last one.
func TestCaretLine_MarksEveryOffender(t *testing.T) {
	assert.Equal(t, " ^", caretFor(t, "0w0"))
	assert.Equal(t, "^^^", caretFor(t, "owo"))
	assert.Equal(t, " ^ ^", caretFor(t, "0g1h0"))
}

// TestCaretLine_RuneAlignment verifies carets align with rune positions,
// not byte offsets, for multi-byte input.
func TestCaretLine_RuneAlignment(t *testing.T) {
	assert.Equal(t, " ^", caretFor(t, "a€0"))
	assert.Equal(t, "^^", caretFor(t, "€x"))
}
