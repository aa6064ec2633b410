package match

// ASIZE is the alphabet size of the table-driven algorithms: codes 0..127.
const ASIZE = 128

// BoyerMoore is the Boyer-Moore algorithm with both the good-suffix and the
// bad-character rules. Pattern codes must lie in [0, ASIZE); sequence codes
// outside that range never match.
type BoyerMoore struct{}

// BoyerMoorePattern is a pattern prepared for BoyerMoore.
type BoyerMoorePattern struct {
	pat        []rune
	goodSuffix []int
	badChar    [ASIZE]int
}

// Init builds the shift tables of pattern.
func (BoyerMoore) Init(pattern []rune) (BoyerMoorePattern, error) {
	m := len(pattern)
	if m == 0 {
		return BoyerMoorePattern{}, ErrEmptyPattern
	}
	if err := checkAlphabet("boyer_moore", pattern); err != nil {
		return BoyerMoorePattern{}, err
	}
	p := BoyerMoorePattern{
		pat:        append([]rune(nil), pattern...),
		goodSuffix: goodSuffixes(pattern),
	}
	for i := range p.badChar {
		p.badChar[i] = m
	}
	for i := 0; i < m-1; i++ {
		p.badChar[pattern[i]] = m - 1 - i
	}
	return p, nil
}

// suffixes returns, for each i, the length of the longest suffix of
// pat[:i+1] that is also a suffix of pat.
func suffixes(pat []rune) []int {
	m := len(pat)
	suff := make([]int, m)
	suff[m-1] = m

	f, g := 0, m-1
	for i := m - 2; i >= 0; i-- {
		if i > g && suff[i+m-1-f] < i-g {
			suff[i] = suff[i+m-1-f]
			continue
		}
		if i < g {
			g = i
		}
		f = i
		for g >= 0 && pat[g] == pat[g+m-1-f] {
			g--
		}
		suff[i] = f - g
	}
	return suff
}

func goodSuffixes(pat []rune) []int {
	m := len(pat)
	suff := suffixes(pat)
	gs := make([]int, m)
	for i := range gs {
		gs[i] = m
	}

	j := 0
	for i := m - 1; i >= -1; i-- {
		if i == -1 || suff[i] == i+1 {
			for ; j < m-1-i; j++ {
				if gs[j] == m {
					gs[j] = m - 1 - i
				}
			}
		}
	}
	for i := 0; i < m-1; i++ {
		gs[m-1-suff[i]] = m - 1 - i
	}
	return gs
}

// MatchCount counts the occurrences of p in sequence.
func (BoyerMoore) MatchCount(p BoyerMoorePattern, sequence []rune) int {
	m, n := len(p.pat), len(sequence)
	matches := 0
	for j := 0; j <= n-m; {
		i := m - 1
		for i >= 0 && p.pat[i] == sequence[i+j] {
			i--
		}
		if i < 0 {
			matches++
			j += p.goodSuffix[0]
			continue
		}
		bad := m
		if c := sequence[i+j]; inAlphabet(c) {
			bad = p.badChar[c]
		}
		j += max(p.goodSuffix[i], bad-m+1+i)
	}
	return matches
}
