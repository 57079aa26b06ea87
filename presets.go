package radix

// Preset alphabets for common textual bases. The bases up to 36 decode
// case-insensitively; the wider ones need both letter cases as distinct
// digits.
var (
	// Base16 is lowercase hexadecimal; decoding accepts either case.
	Base16 = MustNew("0123456789abcdef", CaseInsensitive)

	// Base32 extends hexadecimal through 'v'; decoding accepts either case.
	Base32 = MustNew("0123456789abcdefghijklmnopqrstuv", CaseInsensitive)

	// Base32RFC is the RFC 4648 alphabet in lowercase; decoding accepts
	// either case.
	Base32RFC = MustNew("abcdefghijklmnopqrstuvwxyz234567", CaseInsensitive)

	// Base36 covers digits plus the latin alphabet; decoding accepts either case.
	Base36 = MustNew("0123456789abcdefghijklmnopqrstuvwxyz", CaseInsensitive)

	// Base58 is the Bitcoin alphabet: no 0, O, I or l; case-sensitive.
	Base58 = MustNew("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", CaseSensitive)

	// Base62 is digits, then uppercase, then lowercase; case-sensitive.
	Base62 = MustNew("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", CaseSensitive)

	// Base64 is the standard RFC 4648 alphabet, unpadded; case-sensitive.
	Base64 = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", CaseSensitive)

	// Base64URL is the URL- and filename-safe RFC 4648 alphabet; case-sensitive.
	Base64URL = MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", CaseSensitive)
)

// presets maps stable names to the alphabets above.
var presets = map[string]Alphabet{
	"base16":     Base16,
	"base32":     Base32,
	"base32-rfc": Base32RFC,
	"base36":     Base36,
	"base58":     Base58,
	"base62":     Base62,
	"base64":     Base64,
	"base64-url": Base64URL,
}

// presetNames holds the preset names in ascending radix order.
var presetNames = []string{
	"base16", "base32", "base32-rfc", "base36",
	"base58", "base62", "base64", "base64-url",
}

// Preset returns the alphabet registered under name, reporting whether
// the name is known. Names are the lowercase forms listed by PresetNames.
func Preset(name string) (Alphabet, bool) {
	a, ok := presets[name]
	return a, ok
}

// PresetNames lists the built-in alphabet names in ascending radix
// order. The returned slice is a copy and safe to modify.
func PresetNames() []string {
	return append([]string(nil), presetNames...)
}
