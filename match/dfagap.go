package match

import "errors"

// fail marks a missing DFA transition.
const fail = -1

// DefaultGapAlphabet is the DNA alphabet gap transitions are built over.
const DefaultGapAlphabet = "ACGT"

// DFAGap is an approximate matcher: between any two consecutive pattern
// codes it tolerates up to Gap codes of Alphabet that differ from the next
// pattern code. MatchCount counts the start positions from which the
// automaton reaches its terminal state.
type DFAGap struct {
	Gap      int
	Alphabet string // default DefaultGapAlphabet
}

// DFAGapPattern is the automaton of one pattern.
type DFAGapPattern struct {
	dfa      [][ASIZE]int32
	terminal int32
	m        int
}

func (d DFAGap) alphabet() ([]rune, error) {
	s := d.Alphabet
	if s == "" {
		s = DefaultGapAlphabet
	}
	codes := []rune(s)
	if err := checkAlphabet("dfa_gap", codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// Init builds the automaton of pattern. It has m + 1 + Gap*(m-1) states.
func (d DFAGap) Init(pattern []rune) (DFAGapPattern, error) {
	m := len(pattern)
	if m == 0 {
		return DFAGapPattern{}, ErrEmptyPattern
	}
	if d.Gap < 0 {
		return DFAGapPattern{}, errors.New("dfa_gap: negative gap")
	}
	if err := checkAlphabet("dfa_gap", pattern); err != nil {
		return DFAGapPattern{}, err
	}
	alphabet, err := d.alphabet()
	if err != nil {
		return DFAGapPattern{}, err
	}

	k := d.Gap
	dfa := make([][ASIZE]int32, m+1+k*(m-1))
	for i := range dfa {
		for c := range dfa[i] {
			dfa[i][c] = fail
		}
	}

	dfa[0][pattern[0]] = 1
	state, newState := 1, 1
	for i := 1; i < m; i++ {
		newState++
		dfa[state][pattern[i]] = int32(newState)
		last := state
		for j := 1; j <= k; j++ {
			gap := newState + j
			dfa[gap][pattern[i]] = int32(newState)
			for _, c := range alphabet {
				if c == pattern[i] {
					continue
				}
				dfa[last][c] = int32(gap)
			}
			last = gap
		}
		state = newState
		newState += k
	}

	return DFAGapPattern{dfa: dfa, terminal: int32(state), m: m}, nil
}

// MatchCount counts the start positions in sequence at which p matches.
func (DFAGap) MatchCount(p DFAGapPattern, sequence []rune) int {
	n := len(sequence)
	matches := 0
	for i := 0; i <= n-p.m; i++ {
		state := int32(0)
		for ch := i; ch < n; ch++ {
			c := sequence[ch]
			if !inAlphabet(c) || p.dfa[state][c] == fail {
				break
			}
			state = p.dfa[state][c]
		}
		if state == p.terminal {
			matches++
		}
	}
	return matches
}
