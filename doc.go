// Package radix converts integers to and from positional notation in
// arbitrary bases, where each base is described by an explicit Alphabet
// of digit symbols.
//
// 🚀 What is radix?
//
//	A small, pure-Go engine for compact textual identifiers
//	(URL shorteners, ticket codes, content hashes):
//	  • Alphabet: an ordered, duplicate-free set of digit runes
//	  • Encode: integer → digit string, most significant digit first
//	  • Decode: digit string → integer, reporting every bad character
//	  • Convert: digit string → digit string across two alphabets
//	  • Presets: base16 … base64-url, ready to use
//
// ✨ Key features:
//   - Validated construction: New rejects radixes below 2 and duplicate symbols
//   - Optional case folding: CaseInsensitive alphabets accept "FE0F" and "fe0f" alike
//   - Exhaustive decode errors: every invalid character, with its rune index
//   - Full Unicode alphabets: symbols are runes, not bytes
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/radix"
//
//	id := radix.Encode(radix.Base62, 9374953)                  // "dKqv"
//	n, err := radix.Decode(radix.Base62, id)                   // 9374953
//	hex, err := radix.Convert(radix.Base62, radix.Base16, id)  // "8f0ce9"
//
//	Custom bases come from New (validated) or MustNew (panics, for
//	package-level defaults):
//
//	dna, err := radix.New("acgt", radix.CaseInsensitive)
//
// Performance:
//
//   - Encode: O(d) for d output digits
//   - Decode: O(n) over input runes, one map lookup per rune
//   - Convert: one Decode plus one Encode
//
// Errors:
//
//   - ErrRadixTooSmall, ErrDuplicateSymbol: rejected by New
//   - ErrEmptyString: Decode of the empty string
//   - InvalidCharsError: Decode input holding characters outside the
//     alphabet; it lists every offender with its rune index
//
// See example_test.go for runnable examples.
package radix
