package bench

import (
	"fmt"
	"io"
	"runtime"
	"time"
)

// DefaultLanguage identifies this implementation in reports, in the same
// spirit as "c-gcc" or "cpp-llvm".
func DefaultLanguage() string {
	return "go-" + runtime.Compiler
}

// Report is the summary of one run.
type Report struct {
	Language  string
	Algorithm string
	Elapsed   time.Duration
}

// Seconds returns the elapsed time in seconds.
func (r Report) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// WriteTo writes the three-line report.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "language: %s\nalgorithm: %s\nruntime: %.6f\n",
		r.Language, r.Algorithm, r.Seconds())
	return int64(n), err
}

// Mismatch is a single disagreement with the answer grid. Indices are
// 0-based; String renders them 1-based.
type Mismatch struct {
	Pattern  int
	Sequence int
	Actual   int
	Expected int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Pattern %d mismatch against sequence %d (%d != %d)",
		m.Pattern+1, m.Sequence+1, m.Actual, m.Expected)
}
