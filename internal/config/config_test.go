package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchbench.yml")
	require.NoError(t, os.WriteFile(path, []byte("gap: 3\nruns: 5\nlog_level: info\noutput: out.yml\n"), 0o644))

	cfg, err := Load(path, envMap(map[string]string{
		"MATCHBENCH_RUNS":     "7",
		"MATCHBENCH_JSON_LOG": "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Gap)
	assert.Equal(t, 7, cfg.Runs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "out.yml", cfg.Output)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "ACGT", cfg.GapAlphabet)
}

func TestLoadBadEnv(t *testing.T) {
	_, err := Load("", envMap(map[string]string{"MATCHBENCH_GAP": "x"}))
	assert.ErrorContains(t, err, "MATCHBENCH_GAP")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), envMap(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
