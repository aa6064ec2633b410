package bench

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckArgs(t *testing.T) {
	const usage = "matchbench run kmp <sequences> <patterns> [ <answers> ]"

	for _, args := range [][]string{nil, {"s"}, {"s", "p", "a", "x"}, {"s", "p", "a", "x", "y"}} {
		_, err := CheckArgs(usage, args)
		require.Error(t, err, "%d args", len(args))
		assert.ErrorIs(t, err, ErrUsage)
		assert.Equal(t, "Usage: "+usage, err.Error())

		var ue *UsageError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, len(args), ue.Got)
	}

	in, err := CheckArgs(usage, []string{"s", "p"})
	require.NoError(t, err)
	assert.Equal(t, Inputs{Sequences: "s", Patterns: "p"}, in)

	in, err = CheckArgs(usage, []string{"s", "p", "a"})
	require.NoError(t, err)
	assert.Equal(t, Inputs{Sequences: "s", Patterns: "p", Answers: "a", HasAnswers: true}, in)
}

func TestCountMismatchError(t *testing.T) {
	err := NewAnswers([][]int{{1}}).Check(2, 1)
	assert.ErrorIs(t, err, ErrCountMismatch)
	assert.Equal(t, "count mismatch between patterns file and answers file: 1 answer rows, want 2 patterns", err.Error())

	err = NewAnswers([][]int{{1}, {1, 2}}).Check(2, 1)
	assert.ErrorIs(t, err, ErrCountMismatch)
	assert.Contains(t, err.Error(), "answers row 2 has 2 entries, want 1 sequences")

	assert.NoError(t, NewAnswers([][]int{{1}, {2}}).Check(2, 1))
}
