// Package bench runs a pattern-matching algorithm over every pattern and
// sequence of a corpus, verifies the counts against an optional answer grid,
// and reports the wall-clock time of the whole grid.
//
// The timed region starts before the corpus is encoded, so every algorithm
// pays the same normalization cost.
package bench

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Matcher is a single-pattern algorithm. P is the algorithm's preprocessed
// form of one pattern; the driver treats it as opaque.
type Matcher[P any] interface {
	// Init prepares pattern for repeated searches.
	Init(pattern []rune) (P, error)
	// MatchCount returns the number of matches of p in sequence.
	MatchCount(p P, sequence []rune) int
}

// MultiMatcher is an algorithm that searches all patterns in one pass over
// each sequence.
type MultiMatcher[A any] interface {
	// Build prepares the whole pattern set.
	Build(patterns [][]rune) (A, error)
	// MatchCounts stores in counts[p] the number of matches of pattern p in
	// sequence. len(counts) equals the number of patterns.
	MatchCounts(a A, sequence []rune, counts []int)
}

// Corpus is the resident input of one run. Index order of Patterns and
// Sequences matches the row and column order of Answers.
type Corpus struct {
	Sequences []string
	Patterns  []string
	Answers   *Answers // nil disables verification
}

// Check validates the answer grid shape, if there is one.
func (c Corpus) Check() error {
	if c.Answers == nil {
		return nil
	}
	return c.Answers.Check(len(c.Patterns), len(c.Sequences))
}

// Options configures a run. Zero values select the defaults.
type Options struct {
	Language    string           // default DefaultLanguage()
	Algorithm   string           // display name, printed verbatim
	Report      io.Writer        // default os.Stdout
	Diagnostics io.Writer        // default os.Stderr
	Now         func() time.Time // default time.Now
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = DefaultLanguage()
	}
	if o.Report == nil {
		o.Report = os.Stdout
	}
	if o.Diagnostics == nil {
		o.Diagnostics = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Result is the outcome of a completed run.
type Result struct {
	Mismatches int
	Report     Report
}

// Status is the run's return value: 0 on full agreement, otherwise the
// number of mismatching pairs.
func (r Result) Status() int { return r.Mismatches }

// verifier compares counts against the answer grid. It is chosen once per
// run.
type verifier interface {
	check(p, s, actual int)
	mismatches() int
}

type noVerify struct{}

func (noVerify) check(int, int, int) {}
func (noVerify) mismatches() int     { return 0 }

type gridVerify struct {
	answers *Answers
	w       io.Writer
	n       int
}

func (v *gridVerify) check(p, s, actual int) {
	if expected := v.answers.At(p, s); actual != expected {
		fmt.Fprintln(v.w, Mismatch{Pattern: p, Sequence: s, Actual: actual, Expected: expected})
		v.n++
	}
}

func (v *gridVerify) mismatches() int { return v.n }

func newVerifier(a *Answers, w io.Writer) verifier {
	if a == nil {
		return noVerify{}
	}
	return &gridVerify{answers: a, w: w}
}

// Run executes m over c. Patterns are visited in ascending order, and for
// each pattern Init is called once before MatchCount runs against every
// sequence in ascending order.
//
// An answer grid that does not fit the corpus fails before anything is
// timed. An error from Init ends the run and is returned as is; no report
// is written in that case.
func Run[P any](m Matcher[P], c Corpus, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := c.Check(); err != nil {
		return Result{}, err
	}
	v := newVerifier(c.Answers, opts.Diagnostics)

	start := opts.Now()
	patterns := EncodeAll(c.Patterns)
	sequences := EncodeAll(c.Sequences)
	for p, pattern := range patterns {
		pre, err := m.Init(pattern)
		if err != nil {
			return Result{}, err
		}
		for s, sequence := range sequences {
			v.check(p, s, m.MatchCount(pre, sequence))
		}
	}
	elapsed := opts.Now().Sub(start)

	return finish(v, opts, elapsed)
}

// RunMulti executes a multi-pattern algorithm over c. The pattern set is
// built once inside the timed region; each sequence is then searched once,
// and its counts are verified in ascending pattern order.
func RunMulti[A any](m MultiMatcher[A], c Corpus, opts Options) (Result, error) {
	opts = opts.withDefaults()
	if err := c.Check(); err != nil {
		return Result{}, err
	}
	v := newVerifier(c.Answers, opts.Diagnostics)

	start := opts.Now()
	patterns := EncodeAll(c.Patterns)
	sequences := EncodeAll(c.Sequences)
	auto, err := m.Build(patterns)
	if err != nil {
		return Result{}, err
	}
	counts := make([]int, len(patterns))
	for s, sequence := range sequences {
		clear(counts)
		m.MatchCounts(auto, sequence, counts)
		for p, n := range counts {
			v.check(p, s, n)
		}
	}
	elapsed := opts.Now().Sub(start)

	return finish(v, opts, elapsed)
}

func finish(v verifier, opts Options, elapsed time.Duration) (Result, error) {
	res := Result{
		Mismatches: v.mismatches(),
		Report: Report{
			Language:  opts.Language,
			Algorithm: opts.Algorithm,
			Elapsed:   elapsed,
		},
	}
	if _, err := res.Report.WriteTo(opts.Report); err != nil {
		return res, fmt.Errorf("write report: %w", err)
	}
	return res, nil
}
