package match

import "github.com/mhr3/matchbench/internal/codealg"

// RarePair filters candidate windows on the two rarest codes of the pattern
// and verifies only the windows where both agree. It counts overlapping
// occurrences. A nil Ranks selects DefaultRanks.
type RarePair struct {
	Ranks *Ranks
}

// RarePairPattern is a pattern with its selected filter codes.
type RarePairPattern struct {
	pat   []rune
	rare1 rune
	off1  int
	rare2 rune
	off2  int
}

// Init selects the filter pair of pattern.
func (r RarePair) Init(pattern []rune) (RarePairPattern, error) {
	if len(pattern) == 0 {
		return RarePairPattern{}, ErrEmptyPattern
	}
	ranks := r.Ranks
	if ranks == nil {
		ranks = DefaultRanks()
	}
	p := RarePairPattern{pat: append([]rune(nil), pattern...)}
	p.rare1, p.off1, p.rare2, p.off2 = selectRarePair(p.pat, ranks)
	return p, nil
}

// selectRarePair finds two distinct rare codes by scanning the entire
// pattern, returned in offset order. When the pattern has a single distinct
// code, first and last are used.
func selectRarePair(pattern []rune, ranks *Ranks) (rare1 rune, off1 int, rare2 rune, off2 int) {
	n := len(pattern)
	if n == 1 {
		return pattern[0], 0, pattern[0], 0
	}

	best1, best2 := pattern[0], rune(0)
	best1Off, best2Off := 0, -1
	best1Rank := uint16(ranks.of(best1))
	best2Rank := uint16(0xFFFF)

	for i := 1; i < n; i++ {
		c := pattern[i]
		rank := uint16(ranks.of(c))
		if rank < best1Rank {
			if c != best1 {
				best2, best2Off, best2Rank = best1, best1Off, best1Rank
			}
			best1, best1Off, best1Rank = c, i, rank
		} else if c != best1 && rank < best2Rank {
			best2, best2Off, best2Rank = c, i, rank
		}
	}

	if best2Off == -1 {
		return pattern[0], 0, pattern[n-1], n - 1
	}

	off1, off2 = best1Off, best2Off
	rare1, rare2 = best1, best2
	if off1 > off2 {
		off1, off2 = off2, off1
		rare1, rare2 = rare2, rare1
	}
	return rare1, off1, rare2, off2
}

// MatchCount counts the occurrences of p in sequence.
func (RarePair) MatchCount(p RarePairPattern, sequence []rune) int {
	m := len(p.pat)
	matches := 0
	for i := 0; i+m <= len(sequence); i++ {
		if sequence[i+p.off1] != p.rare1 || sequence[i+p.off2] != p.rare2 {
			continue
		}
		if codealg.Equal(sequence[i:i+m], p.pat) {
			matches++
		}
	}
	return matches
}
