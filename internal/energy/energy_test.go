package energy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZone(t *testing.T, dir string, energy, maxRange string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "energy_uj"), []byte(energy+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "max_energy_range_uj"), []byte(maxRange+"\n"), 0o644))
}

func TestMeterUnavailable(t *testing.T) {
	_, err := NewMeter(t.TempDir())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMeterSample(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "intel-rapl:0")
	core := filepath.Join(pkg, "intel-rapl:0:0")
	writeZone(t, pkg, "1000000", "262143328850")
	writeZone(t, core, "500000", "262143328850")

	m, err := NewMeter(root)
	require.NoError(t, err)

	before, err := m.Sample()
	require.NoError(t, err)
	assert.Equal(t, Sample{Package: 1000000, Core: 500000, HasCore: true}, before)

	writeZone(t, pkg, "3500000", "262143328850")
	writeZone(t, core, "1500000", "262143328850")
	after, err := m.Sample()
	require.NoError(t, err)

	r := m.Between(before, after)
	assert.InDelta(t, 2.5, r.Package, 1e-9)
	assert.InDelta(t, 1.0, r.CPU, 1e-9)
}

func TestMeterWithoutCore(t *testing.T) {
	root := t.TempDir()
	writeZone(t, filepath.Join(root, "intel-rapl:0"), "10", "100")

	m, err := NewMeter(root)
	require.NoError(t, err)
	s, err := m.Sample()
	require.NoError(t, err)
	assert.False(t, s.HasCore)
	assert.Equal(t, -1.0, m.Between(s, s).CPU)
}

func TestDeltaWraparound(t *testing.T) {
	assert.Equal(t, uint64(5), delta(10, 15, 100))
	assert.Equal(t, uint64(15), delta(90, 5, 100))
}
