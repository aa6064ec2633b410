package main

import (
	"fmt"
	"io"

	"github.com/mhr3/matchbench/bench"
	"github.com/mhr3/matchbench/internal/energy"
	"github.com/mhr3/matchbench/internal/sysinfo"
)

func writeInfo(w io.Writer, powercapRoot string) error {
	h := sysinfo.Host()
	energyStatus := "available"
	if _, err := energy.NewMeter(powercapRoot); err != nil {
		energyStatus = err.Error()
	}
	_, err := fmt.Fprintf(w, "language: %s\ngo: %s\nplatform: %s/%s\ncpus: %d\nfeatures: %s\nenergy: %s\n",
		bench.DefaultLanguage(), h.GoVersion, h.GOOS, h.GOARCH, h.NumCPU, h.FeatureString(), energyStatus)
	return err
}
