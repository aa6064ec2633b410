// Package energy reads RAPL energy counters through the Linux powercap
// interface.
package energy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultRoot is where the kernel exposes powercap zones.
const DefaultRoot = "/sys/class/powercap"

// ErrUnavailable is returned when no RAPL package zone can be read.
var ErrUnavailable = errors.New("energy counters unavailable")

type zone struct {
	dir      string
	maxRange uint64 // counter wraps at this many microjoules
}

// Meter samples the package and core energy of socket 0.
type Meter struct {
	pkg  zone
	core *zone
}

// NewMeter opens the RAPL zones below root. The core zone is optional.
func NewMeter(root string) (*Meter, error) {
	if root == "" {
		root = DefaultRoot
	}
	pkg, err := openZone(filepath.Join(root, "intel-rapl:0"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	m := &Meter{pkg: pkg}
	if core, err := openZone(filepath.Join(root, "intel-rapl:0", "intel-rapl:0:0")); err == nil {
		m.core = &core
	}
	return m, nil
}

func openZone(dir string) (zone, error) {
	z := zone{dir: dir}
	if _, err := readUint(filepath.Join(dir, "energy_uj")); err != nil {
		return zone{}, err
	}
	if r, err := readUint(filepath.Join(dir, "max_energy_range_uj")); err == nil {
		z.maxRange = r
	}
	return z, nil
}

func readUint(path string) (uint64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
}

// Sample is a snapshot of the counters, in microjoules.
type Sample struct {
	Package uint64
	Core    uint64
	HasCore bool
}

// Sample reads the counters.
func (m *Meter) Sample() (Sample, error) {
	var s Sample
	var err error
	if s.Package, err = readUint(filepath.Join(m.pkg.dir, "energy_uj")); err != nil {
		return Sample{}, err
	}
	if m.core != nil {
		if s.Core, err = readUint(filepath.Join(m.core.dir, "energy_uj")); err != nil {
			return Sample{}, err
		}
		s.HasCore = true
	}
	return s, nil
}

// Reading is the energy consumed between two samples, in joules. A value of
// -1 means the counter is not available.
type Reading struct {
	Package float64
	CPU     float64
}

// Unavailable is the reading recorded when no meter exists.
var Unavailable = Reading{Package: -1, CPU: -1}

// Between returns the energy consumed from before to after.
func (m *Meter) Between(before, after Sample) Reading {
	r := Reading{Package: joules(delta(before.Package, after.Package, m.pkg.maxRange)), CPU: -1}
	if m.core != nil && before.HasCore && after.HasCore {
		r.CPU = joules(delta(before.Core, after.Core, m.core.maxRange))
	}
	return r
}

func delta(before, after, maxRange uint64) uint64 {
	if after >= before {
		return after - before
	}
	// counter wrapped
	return maxRange - before + after
}

func joules(uj uint64) float64 {
	return float64(uj) / 1e6
}
