package match

// BruteForce compares the pattern at every position. It serves as the
// reference the other algorithms are checked against.
type BruteForce struct{}

// Init copies pattern.
func (BruteForce) Init(pattern []rune) ([]rune, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return append([]rune(nil), pattern...), nil
}

// MatchCount counts the overlapping occurrences of p in sequence.
func (BruteForce) MatchCount(p []rune, sequence []rune) int {
	matches := 0
outer:
	for i := 0; i+len(p) <= len(sequence); i++ {
		for k, c := range p {
			if sequence[i+k] != c {
				continue outer
			}
		}
		matches++
	}
	return matches
}
