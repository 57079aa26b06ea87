package radix

// Encode renders value in the positional base described by a, most
// significant digit first.
//
// Algorithm Outline:
//  1. Take the absolute magnitude of value; the sign is discarded.
//  2. Repeatedly divide by the radix, collecting remainders as digits.
//  3. Reverse the collected digits.
//
// Zero encodes as the alphabet's first symbol, so every int64 yields a
// non-empty string and Encode never fails.
//
// Encode panics if a was not built by New, MustNew or a preset: the
// zero-value Alphabet has no symbols to divide by.
//
// Complexity: O(d) time and memory for d output digits.
func Encode(a Alphabet, value int64) string {
	n := uint64(len(a.symbols))
	if n < 2 {
		panic("radix: Encode requires an alphabet of at least two symbols")
	}

	// -value wraps for math.MinInt64; converting to uint64 still yields
	// the correct magnitude 1<<63.
	u := uint64(value)
	if value < 0 {
		u = uint64(-value)
	}

	// 16 digits cover every preset up to the math.MinInt64 magnitude.
	buf := make([]rune, 0, 16)
	for {
		buf = append(buf, a.symbols[u%n])
		u /= n
		if u == 0 {
			break
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
