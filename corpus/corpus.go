// Package corpus reads and writes the data files of a benchmark run.
//
// Sequence and pattern files start with a header line "<count> <max-length>"
// followed by one entry per line. Answer files start with "<rows> <columns>"
// followed by rows of comma-separated counts, one row per pattern and one
// column per sequence.
package corpus

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/segmentio/asm/ascii"
	"github.com/segmentio/asm/utf8"

	"github.com/mhr3/matchbench/bench"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// FormatError describes malformed file content. Line is 1-based; the header
// is line 1.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ReadSequences reads a sequence file.
func ReadSequences(path string) ([]string, error) {
	return readFile(path, ParseLines)
}

// ReadPatterns reads a pattern file. Patterns share the sequence format.
func ReadPatterns(path string) ([]string, error) {
	return readFile(path, ParseLines)
}

// ReadAnswers reads an answer file.
func ReadAnswers(path string) (*bench.Answers, error) {
	return readFile(path, ParseAnswers)
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, err
	}
	v, err := parse(bytes.NewReader(data))
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// IsASCII reports whether every entry consists of ASCII characters only.
func IsASCII(entries []string) bool {
	for _, s := range entries {
		if !ascii.ValidString(s) {
			return false
		}
	}
	return true
}

func readAll(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

func parseHeader(lines []string) (first, second int, err error) {
	if len(lines) == 0 {
		return 0, 0, &FormatError{Line: 1, Msg: "missing header line"}
	}
	fields := strings.Fields(lines[0])
	if len(fields) != 2 {
		return 0, 0, &FormatError{Line: 1, Msg: fmt.Sprintf("header has %d fields, want 2", len(fields))}
	}
	first, err = strconv.Atoi(fields[0])
	if err == nil {
		second, err = strconv.Atoi(fields[1])
	}
	if err != nil {
		return 0, 0, &FormatError{Line: 1, Msg: "bad header: " + err.Error()}
	}
	if first < 0 || second < 0 {
		return 0, 0, &FormatError{Line: 1, Msg: "negative header value"}
	}
	return first, second, nil
}

// ParseLines parses sequence or pattern data. The number of entries must
// match the header count and no entry may exceed the header's max length,
// counted in characters.
func ParseLines(r io.Reader) ([]string, error) {
	lines, err := readAll(r)
	if err != nil {
		return nil, err
	}
	count, maxLen, err := parseHeader(lines)
	if err != nil {
		return nil, err
	}
	data := lines[1:]
	if len(data) != count {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("incorrect number of lines: %d/%d", len(data), count)}
	}
	for i, s := range data {
		if n := len([]rune(s)); n > maxLen {
			return nil, &FormatError{Line: i + 2, Msg: fmt.Sprintf("length %d exceeds max %d", n, maxLen)}
		}
	}
	return data, nil
}

// ParseAnswers parses answer data.
func ParseAnswers(r io.Reader) (*bench.Answers, error) {
	lines, err := readAll(r)
	if err != nil {
		return nil, err
	}
	rows, cols, err := parseHeader(lines)
	if err != nil {
		return nil, err
	}
	data := lines[1:]
	if len(data) != rows {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("incorrect number of lines: %d/%d", len(data), rows)}
	}

	grid := make([][]int, rows)
	for i, line := range data {
		if cols == 0 && line == "" {
			grid[i] = []int{}
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != cols {
			return nil, &FormatError{Line: i + 2, Msg: fmt.Sprintf("%d numbers, want %d", len(fields), cols)}
		}
		row := make([]int, cols)
		for j, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, &FormatError{Line: i + 2, Msg: fmt.Sprintf("entry %d: %v", j+1, err)}
			}
			row[j] = n
		}
		grid[i] = row
	}
	return bench.NewAnswers(grid), nil
}

// WriteLines writes entries in the sequence/pattern format.
func WriteLines(w io.Writer, entries []string) error {
	maxLen := 0
	for _, s := range entries {
		maxLen = max(maxLen, len([]rune(s)))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(entries), maxLen)
	for _, s := range entries {
		bw.WriteString(s)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteAnswers writes grid in the answer format. All rows must have
// columns entries.
func WriteAnswers(w io.Writer, grid [][]int, columns int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(grid), columns)
	for i, row := range grid {
		if len(row) != columns {
			return fmt.Errorf("answers row %d has %d entries, want %d", i+1, len(row), columns)
		}
		for j, n := range row {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(strconv.Itoa(n))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
