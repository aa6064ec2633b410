package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is matched by any *UsageError.
	ErrUsage = errors.New("usage")
	// ErrCountMismatch is matched by any *CountMismatchError.
	ErrCountMismatch = errors.New("count mismatch between patterns file and answers file")
)

// UsageError reports a wrong number of positional inputs.
type UsageError struct {
	Usage string // expected invocation form
	Got   int    // number of inputs supplied
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// CountMismatchKind says which dimension of the answer grid disagrees with
// the corpus.
type CountMismatchKind int

const (
	// RowCount: number of answer rows differs from the number of patterns.
	RowCount CountMismatchKind = iota
	// ColumnCount: an answer row does not have one entry per sequence.
	ColumnCount
)

// CountMismatchError reports an answer grid whose shape does not fit the
// pattern and sequence sets.
type CountMismatchError struct {
	Kind CountMismatchKind
	Want int
	Got  int
	Row  int // 0-based, only meaningful for ColumnCount
}

func (e *CountMismatchError) Error() string {
	if e.Kind == ColumnCount {
		return fmt.Sprintf("%v: answers row %d has %d entries, want %d sequences",
			ErrCountMismatch, e.Row+1, e.Got, e.Want)
	}
	return fmt.Sprintf("%v: %d answer rows, want %d patterns", ErrCountMismatch, e.Got, e.Want)
}

func (e *CountMismatchError) Is(target error) bool { return target == ErrCountMismatch }
