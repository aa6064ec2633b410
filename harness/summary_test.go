package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	records := []Record{
		{Language: "go-gc", Algorithm: "kmp", Iteration: 1, Success: true, Runtime: 1, Package: -1, CPU: -1},
		{Language: "go-gc", Algorithm: "kmp", Iteration: 2, Success: false, Runtime: 1},
		{Language: "go-gc", Algorithm: "kmp", Iteration: 3, Success: true, Runtime: -0.5, Package: 2, CPU: 1},
		{Language: "go-gc", Algorithm: "kmp", Iteration: 4, Success: true, Runtime: 1, Package: -2, CPU: 1},
	}

	problems := Validate(records)
	require.Len(t, problems, 3)
	assert.Equal(t, "Iteration 2 of go-gc kmp failed", problems[0])
	assert.Contains(t, problems[1], "Iteration 3")
	assert.Contains(t, problems[1], "runtime")
	assert.Contains(t, problems[2], "package")

	assert.Empty(t, Validate(records[:1]))
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Language: "go-gc", Algorithm: "kmp", Runtime: 1, Package: 10, CPU: 5},
		{Language: "go-gc", Algorithm: "kmp", Runtime: 2, Package: 20, CPU: 6},
		{Language: "go-gc", Algorithm: "kmp", Runtime: 6, Package: 30, CPU: 7},
		{Language: "c-gcc", Algorithm: "kmp", Runtime: 4, Package: 1, CPU: 1},
		{Language: "go-gc", Algorithm: "shift_or", Runtime: 3, Package: 2, CPU: 1},
		{Language: "go-gc", Algorithm: "shift_or", Runtime: 5, Package: 4, CPU: 3},
	}

	s := Summarize(records)
	assert.Equal(t, []string{"c-gcc", "go-gc"}, s.Languages)
	assert.Equal(t, []string{"kmp", "shift_or"}, s.Algorithms)

	kmp := s.Cells["go-gc"]["kmp"]
	assert.Equal(t, Stat{Samples: 3, Mean: 3, Median: 2}, kmp["runtime"])
	assert.Equal(t, Stat{Samples: 3, Mean: 20, Median: 20}, kmp["package"])

	so := s.Cells["go-gc"]["shift_or"]["runtime"]
	assert.Equal(t, 4.0, so.Median)
	assert.Equal(t, "Based on 2 samples", so.Notes)
	assert.Equal(t, "Based on 1 samples", s.Cells["c-gcc"]["kmp"]["cpu"].Notes)
	assert.NotContains(t, s.Cells, "rust")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Empty(t, s.Languages)
	assert.Empty(t, s.Cells)
}
