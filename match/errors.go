package match

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPattern is returned by Init for a zero-length pattern.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrAlphabet is matched by any *AlphabetError.
	ErrAlphabet = errors.New("code outside alphabet")
	// ErrPatternTooLong is returned by ShiftOr for patterns wider than its
	// state word.
	ErrPatternTooLong = errors.New("pattern too long")
	// ErrUnknownAlgorithm is returned by Lookup.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// AlphabetError reports a pattern code that a table-driven algorithm cannot
// index.
type AlphabetError struct {
	Algorithm string
	Code      rune
	Pos       int
	Limit     int
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("%s: code %d at position %d outside alphabet of size %d",
		e.Algorithm, e.Code, e.Pos, e.Limit)
}

func (e *AlphabetError) Is(target error) bool { return target == ErrAlphabet }

// checkAlphabet verifies every code of pattern is below ASIZE.
func checkAlphabet(name string, pattern []rune) error {
	for i, c := range pattern {
		if c < 0 || c >= ASIZE {
			return &AlphabetError{Algorithm: name, Code: c, Pos: i, Limit: ASIZE}
		}
	}
	return nil
}

// inAlphabet reports whether c can index an ASIZE table.
func inAlphabet(c rune) bool {
	return c >= 0 && c < ASIZE
}
