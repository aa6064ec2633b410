package corpus

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() GenerateConfig {
	return GenerateConfig{
		Count:           200,
		Length:          64,
		Variance:        8,
		PatternCount:    10,
		PatternLength:   4,
		PatternVariance: 1,
	}
}

func TestGenerate(t *testing.T) {
	cfg := smallConfig()
	g, err := Generate(cfg, rand.NewSource(42))
	require.NoError(t, err)

	require.Len(t, g.Sequences, cfg.Count)
	require.Len(t, g.Patterns, cfg.PatternCount)
	require.Len(t, g.Answers, cfg.PatternCount)
	require.Len(t, g.Matched, cfg.PatternCount)

	for _, s := range g.Sequences {
		assert.GreaterOrEqual(t, len(s), cfg.Length-cfg.Variance)
		assert.LessOrEqual(t, len(s), cfg.Length+cfg.Variance)
		assert.Empty(t, strings.Trim(s, DefaultAlphabet))
	}

	seen := map[string]bool{}
	for p, pat := range g.Patterns {
		assert.False(t, seen[pat], "duplicate pattern %q", pat)
		seen[pat] = true
		assert.GreaterOrEqual(t, g.Matched[p], cfg.Threshold())

		matched := 0
		for s, seq := range g.Sequences {
			want := overlapping(seq, pat)
			require.Equal(t, want, g.Answers[p][s], "pattern %d sequence %d", p, s)
			if want > 0 {
				matched++
			}
		}
		assert.Equal(t, matched, g.Matched[p])
	}
}

func overlapping(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(smallConfig(), rand.NewSource(7))
	require.NoError(t, err)
	b, err := Generate(smallConfig(), rand.NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateInvalidConfig(t *testing.T) {
	for _, mutate := range []func(*GenerateConfig){
		func(c *GenerateConfig) { c.Count = 0 },
		func(c *GenerateConfig) { c.PatternCount = -1 },
		func(c *GenerateConfig) { c.Variance = -1 },
		func(c *GenerateConfig) { c.PatternVariance = c.PatternLength },
		func(c *GenerateConfig) { c.Length = c.PatternLength },
	} {
		cfg := smallConfig()
		mutate(&cfg)
		_, err := Generate(cfg, rand.NewSource(1))
		assert.Error(t, err)
	}
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 1, GenerateConfig{Count: 1}.Threshold())
	assert.Equal(t, 1, GenerateConfig{Count: 1000}.Threshold())
	assert.Equal(t, 2, GenerateConfig{Count: 1001}.Threshold())
	assert.Equal(t, 100, DefaultGenerateConfig().Threshold())
}
