package match

import "sort"

// AhoCorasick searches the whole pattern set in a single pass over each
// sequence. It counts overlapping occurrences of every pattern.
type AhoCorasick struct{}

// Automaton is the goto/failure/output machine of a pattern set.
type Automaton struct {
	next    [][ASIZE]int32
	failure []int32
	output  [][]int // pattern indices recognized in each state
}

func (a *Automaton) addState() int32 {
	var row [ASIZE]int32
	for c := range row {
		row[c] = fail
	}
	a.next = append(a.next, row)
	a.output = append(a.output, nil)
	return int32(len(a.next) - 1)
}

// Build enters every pattern into the trie and computes failure links
// breadth first.
func (AhoCorasick) Build(patterns [][]rune) (*Automaton, error) {
	a := &Automaton{}
	a.addState()

	present := make(map[rune]struct{})
	for idx, pat := range patterns {
		if len(pat) == 0 {
			return nil, ErrEmptyPattern
		}
		if err := checkAlphabet("aho_corasick", pat); err != nil {
			return nil, err
		}
		state := int32(0)
		for _, c := range pat {
			present[c] = struct{}{}
			if a.next[state][c] == fail {
				s := a.addState()
				a.next[state][c] = s
			}
			state = a.next[state][c]
		}
		a.output[state] = append(a.output[state], idx)
	}

	// Failure links only need the codes that occur in some pattern.
	alphabet := make([]rune, 0, len(present))
	for c := range present {
		alphabet = append(alphabet, c)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	a.failure = make([]int32, len(a.next))
	queue := make([]int32, 0, len(a.next))
	for _, c := range alphabet {
		if s := a.next[0][c]; s != fail {
			a.failure[s] = 0
			queue = append(queue, s)
		}
	}
	for c := range a.next[0] {
		if a.next[0][c] == fail {
			a.next[0][c] = 0
		}
	}

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, c := range alphabet {
			s := a.next[r][c]
			if s == fail {
				continue
			}
			queue = append(queue, s)
			f := a.failure[r]
			for a.next[f][c] == fail {
				f = a.failure[f]
			}
			a.failure[s] = a.next[f][c]
			if out := a.output[a.failure[s]]; len(out) > 0 {
				a.output[s] = append(a.output[s], out...)
			}
		}
	}
	return a, nil
}

// MatchCounts adds the occurrences of every pattern in sequence to counts.
func (AhoCorasick) MatchCounts(a *Automaton, sequence []rune, counts []int) {
	state := int32(0)
	for _, c := range sequence {
		if !inAlphabet(c) {
			state = 0
			continue
		}
		for a.next[state][c] == fail {
			state = a.failure[state]
		}
		state = a.next[state][c]
		for _, idx := range a.output[state] {
			counts[idx]++
		}
	}
}
