// Package sysinfo describes the host a benchmark runs on.
package sysinfo

import (
	"runtime"
	"strings"
)

// Info is a snapshot of the host.
type Info struct {
	GoVersion string
	Compiler  string
	GOOS      string
	GOARCH    string
	NumCPU    int
	Features  []string
}

// Host returns the current host description.
func Host() Info {
	return Info{
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		Features:  Features(),
	}
}

// FeatureString joins the feature list for display.
func (i Info) FeatureString() string {
	if len(i.Features) == 0 {
		return "none"
	}
	return strings.Join(i.Features, ",")
}

type feature struct {
	name string
	ok   bool
}

func collect(fs []feature) []string {
	var out []string
	for _, f := range fs {
		if f.ok {
			out = append(out, f.name)
		}
	}
	return out
}
