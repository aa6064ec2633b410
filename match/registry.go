// Package match holds the pattern-matching algorithms the benchmark driver
// can run, and a registry that names them.
package match

import (
	"fmt"
	"sort"

	"github.com/mhr3/matchbench/bench"
)

// Settings parameterizes the algorithms that take options.
type Settings struct {
	Gap         int    // dfa_gap: maximum gap between pattern codes
	GapAlphabet string // dfa_gap: codes a gap may consist of
	Ranks       *Ranks // rare_pair: frequency table, nil for the default
}

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{Gap: 1, GapAlphabet: DefaultGapAlphabet}
}

// Algorithm is a named, runnable algorithm.
type Algorithm struct {
	Name    string
	Summary string
	// Alphabet is the exclusive upper bound on the codes the algorithm
	// accepts in patterns, or 0 if any code is accepted.
	Alphabet int
	// Multi is set for algorithms that search all patterns at once.
	Multi bool

	run func(bench.Corpus, bench.Options) (bench.Result, error)
}

// Run executes the algorithm over c. An empty opts.Algorithm is replaced by
// the algorithm's name.
func (a Algorithm) Run(c bench.Corpus, opts bench.Options) (bench.Result, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = a.Name
	}
	return a.run(c, opts)
}

// Single wraps a single-pattern matcher.
func Single[P any](name, summary string, alphabet int, m bench.Matcher[P]) Algorithm {
	return Algorithm{
		Name:     name,
		Summary:  summary,
		Alphabet: alphabet,
		run: func(c bench.Corpus, opts bench.Options) (bench.Result, error) {
			return bench.Run(m, c, opts)
		},
	}
}

// Multi wraps a multi-pattern matcher.
func Multi[A any](name, summary string, alphabet int, m bench.MultiMatcher[A]) Algorithm {
	return Algorithm{
		Name:     name,
		Summary:  summary,
		Alphabet: alphabet,
		Multi:    true,
		run: func(c bench.Corpus, opts bench.Options) (bench.Result, error) {
			return bench.RunMulti(m, c, opts)
		},
	}
}

// Registry returns every algorithm, sorted by name.
func Registry(s Settings) []Algorithm {
	algos := []Algorithm{
		Single[KMPPattern]("kmp", "Knuth-Morris-Pratt", 0, KMP{}),
		Single[BoyerMoorePattern]("boyer_moore", "Boyer-Moore, good-suffix and bad-character rules", ASIZE, BoyerMoore{}),
		Single[ShiftOrPattern]("shift_or", "bit-parallel Shift-Or, patterns up to 64 codes", ASIZE, ShiftOr{}),
		Single[RarePairPattern]("rare_pair", "rare-code pair filter with window verification", 0, RarePair{Ranks: s.Ranks}),
		Single[[]rune]("brute_force", "compare at every position", 0, BruteForce{}),
		Single[DFAGapPattern]("dfa_gap", "approximate DFA tolerating gaps between pattern codes", ASIZE,
			DFAGap{Gap: s.Gap, Alphabet: s.GapAlphabet}),
		Multi[*Automaton]("aho_corasick", "Aho-Corasick multi-pattern automaton", ASIZE, AhoCorasick{}),
	}
	sort.Slice(algos, func(i, j int) bool { return algos[i].Name < algos[j].Name })
	return algos
}

// Lookup returns the algorithm called name.
func Lookup(name string, s Settings) (Algorithm, error) {
	for _, a := range Registry(s) {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownAlgorithm, name, Names())
}

// Names returns the registered algorithm names, sorted.
func Names() []string {
	algos := Registry(DefaultSettings())
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.Name
	}
	return names
}
