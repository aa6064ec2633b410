package sysinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	info := Host()
	assert.Equal(t, runtime.GOARCH, info.GOARCH)
	assert.Equal(t, runtime.Compiler, info.Compiler)
	assert.Positive(t, info.NumCPU)
	assert.NotEmpty(t, info.FeatureString())
}

func TestCollect(t *testing.T) {
	got := collect([]feature{{"a", true}, {"b", false}, {"c", true}})
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, "none", Info{}.FeatureString())
}
