package match

// WORD is the width in bits of the Shift-Or state, and so the longest
// pattern ShiftOr accepts.
const WORD = 64

// ShiftOr is the bit-parallel Shift-Or algorithm. It counts overlapping
// occurrences of patterns of at most WORD codes.
type ShiftOr struct{}

// ShiftOrPattern is a pattern prepared for ShiftOr.
type ShiftOrPattern struct {
	lim       uint64
	positions [ASIZE]uint64
}

// Init computes the position masks of pattern.
func (ShiftOr) Init(pattern []rune) (ShiftOrPattern, error) {
	m := len(pattern)
	if m == 0 {
		return ShiftOrPattern{}, ErrEmptyPattern
	}
	if m > WORD {
		return ShiftOrPattern{}, ErrPatternTooLong
	}
	if err := checkAlphabet("shift_or", pattern); err != nil {
		return ShiftOrPattern{}, err
	}

	var p ShiftOrPattern
	for i := range p.positions {
		p.positions[i] = ^uint64(0)
	}
	var lim uint64
	j := uint64(1)
	for _, c := range pattern {
		p.positions[c] &^= j
		lim |= j
		j <<= 1
	}
	p.lim = ^(lim >> 1)
	return p, nil
}

// MatchCount counts the occurrences of p in sequence.
func (ShiftOr) MatchCount(p ShiftOrPattern, sequence []rune) int {
	matches := 0
	state := ^uint64(0)
	for _, c := range sequence {
		mask := ^uint64(0)
		if inAlphabet(c) {
			mask = p.positions[c]
		}
		state = state<<1 | mask
		if state < p.lim {
			matches++
		}
	}
	return matches
}
