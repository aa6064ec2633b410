package bench

// Encode converts s into its ordinal encoding: one code point per character,
// in order. Invalid UTF-8 bytes each become one utf8.RuneError, so the
// transform never drops or merges input.
func Encode(s string) []rune {
	return []rune(s)
}

// EncodeAll encodes every string of ss, preserving index order.
func EncodeAll(ss []string) [][]rune {
	out := make([][]rune, len(ss))
	for i, s := range ss {
		out[i] = Encode(s)
	}
	return out
}
