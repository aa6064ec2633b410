package corpus

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/mhr3/matchbench/internal/codealg"
)

// DefaultAlphabet is the DNA alphabet generated data is drawn from.
const DefaultAlphabet = "ACGT"

// maxAttempts bounds the search for a pattern that is frequent enough and
// not yet chosen.
const maxAttempts = 10000

// GenerateConfig describes a random corpus. Lengths vary uniformly within
// ±Variance.
type GenerateConfig struct {
	Count           int
	Length          int
	Variance        int
	PatternCount    int
	PatternLength   int
	PatternVariance int
	Alphabet        string // default DefaultAlphabet
}

// DefaultGenerateConfig mirrors the sizes of the reference experiments.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Count:         100000,
		Length:        1024,
		PatternCount:  100,
		PatternLength: 9,
		Alphabet:      DefaultAlphabet,
	}
}

func (c GenerateConfig) validate() error {
	switch {
	case c.Count <= 0:
		return errors.New("sequence count must be positive")
	case c.PatternCount < 0:
		return errors.New("pattern count must not be negative")
	case c.Variance < 0 || c.PatternVariance < 0:
		return errors.New("variance must not be negative")
	case c.PatternLength-c.PatternVariance <= 0:
		return errors.New("pattern length must stay positive")
	case c.Length-c.Variance <= c.PatternLength+c.PatternVariance:
		return fmt.Errorf("sequence length %d±%d too short for patterns of %d±%d",
			c.Length, c.Variance, c.PatternLength, c.PatternVariance)
	}
	return nil
}

// Generated is a corpus together with its answer grid.
type Generated struct {
	Sequences []string
	Patterns  []string
	Answers   [][]int
	// Matched is, per pattern, the number of sequences containing it.
	Matched []int
}

// Threshold is the minimum number of sequences each generated pattern
// occurs in: 0.1% of the sequences, rounded up.
func (c GenerateConfig) Threshold() int {
	return (c.Count + 999) / 1000
}

// Generate builds a random corpus. Pattern i is cut from the sequence at
// relative position i/PatternCount, so patterns spread across the data, and
// is re-drawn until it occurs in at least Threshold sequences and differs
// from every earlier pattern. Answers count overlapping occurrences.
func Generate(cfg GenerateConfig, src rand.Source) (*Generated, error) {
	if cfg.Alphabet == "" {
		cfg.Alphabet = DefaultAlphabet
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(src)
	alphabet := []rune(cfg.Alphabet)

	g := &Generated{Sequences: make([]string, cfg.Count)}
	encoded := make([][]rune, cfg.Count)
	for i := range g.Sequences {
		n := cfg.Length + rng.Intn(2*cfg.Variance+1) - cfg.Variance
		seq := make([]rune, n)
		for j := range seq {
			seq[j] = alphabet[rng.Intn(len(alphabet))]
		}
		encoded[i] = seq
		g.Sequences[i] = string(seq)
	}

	threshold := cfg.Threshold()
	for idx := 0; idx < cfg.PatternCount; idx++ {
		length := cfg.PatternLength + rng.Intn(2*cfg.PatternVariance+1) - cfg.PatternVariance
		source := encoded[idx*cfg.Count/cfg.PatternCount]

		found := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			base := rng.Intn(len(source) - length)
			pattern := source[base : base+length]
			if slices.Contains(g.Patterns, string(pattern)) {
				continue
			}
			row := make([]int, cfg.Count)
			matched := 0
			for s, seq := range encoded {
				row[s] = codealg.Count(seq, pattern)
				if row[s] > 0 {
					matched++
				}
			}
			if matched < threshold {
				continue
			}
			g.Patterns = append(g.Patterns, string(pattern))
			g.Answers = append(g.Answers, row)
			g.Matched = append(g.Matched, matched)
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("pattern %d: no distinct pattern reached %d matching sequences in %d attempts",
				idx+1, threshold, maxAttempts)
		}
	}
	return g, nil
}
