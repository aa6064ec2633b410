package match

// sentinel terminates a preprocessed pattern. It never equals a decoded
// code point.
const sentinel rune = -1

// KMP is the Knuth-Morris-Pratt algorithm. It counts overlapping
// occurrences.
type KMP struct{}

// KMPPattern is a pattern prepared for KMP.
type KMPPattern struct {
	pat  []rune // pattern followed by sentinel
	next []int
}

// Init builds the next table of pattern.
func (KMP) Init(pattern []rune) (KMPPattern, error) {
	m := len(pattern)
	if m == 0 {
		return KMPPattern{}, ErrEmptyPattern
	}
	pat := make([]rune, m+1)
	copy(pat, pattern)
	pat[m] = sentinel

	next := make([]int, m+1)
	i, j := 0, -1
	next[0] = -1
	for i < m {
		for j > -1 && pat[i] != pat[j] {
			j = next[j]
		}
		i++
		j++
		if pat[i] == pat[j] {
			next[i] = next[j]
		} else {
			next[i] = j
		}
	}
	return KMPPattern{pat: pat, next: next}, nil
}

// MatchCount counts the occurrences of p in sequence.
func (KMP) MatchCount(p KMPPattern, sequence []rune) int {
	m := len(p.pat) - 1
	matches := 0
	i := 0
	for j := 0; j < len(sequence); j++ {
		for i > -1 && p.pat[i] != sequence[j] {
			i = p.next[i]
		}
		i++
		if i >= m {
			matches++
			i = p.next[i]
		}
	}
	return matches
}
