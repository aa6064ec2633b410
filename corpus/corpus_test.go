package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines(t *testing.T) {
	got, err := ParseLines(strings.NewReader("3 4\nACGT\nAC\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "AC", ""}, got)

	got, err = ParseLines(strings.NewReader("2 3\r\n日本語\r\nab\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"日本語", "ab"}, got)

	got, err = ParseLines(strings.NewReader("0 0\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseLinesErrors(t *testing.T) {
	tests := []struct {
		name, in string
		line     int
	}{
		{"empty", "", 1},
		{"one field", "3\n", 1},
		{"not a number", "x 3\n", 1},
		{"negative", "-1 3\n", 1},
		{"too few", "3 4\nA\nC\n", 1},
		{"too many", "1 4\nA\nC\n", 1},
		{"too long", "2 2\nAC\nACG\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLines(strings.NewReader(tt.in))
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "got %v", err)
			assert.Equal(t, tt.line, fe.Line)
		})
	}
}

func TestInvalidUTF8(t *testing.T) {
	_, err := ParseLines(strings.NewReader("1 2\n\xff\xfe\n"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	_, err = ParseAnswers(strings.NewReader("1 1\n1\xff\n"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers(strings.NewReader("2 3\n1,0,2\n0, 0 ,7\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, []int{1, 0, 2}, a.Row(0))
	assert.Equal(t, 7, a.At(1, 2))

	a, err = ParseAnswers(strings.NewReader("2 0\n\n\n"))
	require.NoError(t, err)
	assert.NoError(t, a.Check(2, 0))

	for _, in := range []string{"2 1\n1\n", "1 2\n1\n", "1 2\n1,x\n", "1 2\n1,2,3\n"} {
		_, err := ParseAnswers(strings.NewReader(in))
		var fe *FormatError
		assert.True(t, errors.As(err, &fe), "%q: got %v", in, err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	entries := []string{"ACGT", "", "日本語語"}
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, entries))
	assert.True(t, strings.HasPrefix(buf.String(), "3 4\n"))
	got, err := ParseLines(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	grid := [][]int{{1, 0}, {0, 12}}
	buf.Reset()
	require.NoError(t, WriteAnswers(&buf, grid, 2))
	assert.Equal(t, "2 2\n1,0\n0,12\n", buf.String())
	a, err := ParseAnswers(&buf)
	require.NoError(t, err)
	assert.Equal(t, grid[1], a.Row(1))

	assert.Error(t, WriteAnswers(&bytes.Buffer{}, [][]int{{1}}, 2))
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	seqs := filepath.Join(dir, "sequences.txt")
	answers := filepath.Join(dir, "answers.txt")
	require.NoError(t, os.WriteFile(seqs, []byte("1 4\nACGT\n"), 0o644))
	require.NoError(t, os.WriteFile(answers, []byte("1 1\n1\n"), 0o644))

	got, err := ReadSequences(seqs)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, got)

	got, err = ReadPatterns(seqs)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, got)

	a, err := ReadAnswers(answers)
	require.NoError(t, err)
	assert.Equal(t, 1, a.At(0, 0))

	_, err = ReadSequences(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadAnswers(seqs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), seqs)
}

func TestIsASCII(t *testing.T) {
	assert.True(t, IsASCII(nil))
	assert.True(t, IsASCII([]string{"ACGT", "", "hello world"}))
	assert.False(t, IsASCII([]string{"ACGT", "日本"}))
}
