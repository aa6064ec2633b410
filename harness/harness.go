// Package harness repeats benchmark runs, records each iteration as a YAML
// document, and summarizes the collected records.
package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/mhr3/matchbench/bench"
	"github.com/mhr3/matchbench/internal/energy"
)

// DefaultOutput is the file records are appended to.
const DefaultOutput = "experiments_data.yml"

// Record is one iteration of one language/algorithm pair. Energy readings
// are in joules, -1 when unavailable.
type Record struct {
	Language   string   `yaml:"language"`
	Algorithm  string   `yaml:"algorithm"`
	Iteration  int      `yaml:"iteration"`
	Success    bool     `yaml:"success"`
	Mismatches int      `yaml:"mismatches"`
	Runtime    float64  `yaml:"runtime"`
	Package    float64  `yaml:"package"`
	CPU        float64  `yaml:"cpu"`
	Features   []string `yaml:"features,omitempty"`
}

// RunFunc performs one complete benchmark run.
type RunFunc func(ctx context.Context, iteration int) (bench.Result, error)

// Config controls a harness session.
type Config struct {
	Count     int
	Language  string // recorded when a run fails before reporting
	Algorithm string
	Output    io.Writer
	Meter     *energy.Meter // nil records energy as unavailable
	Features  []string
}

// Run calls run Count times, appending one record per iteration to
// cfg.Output. It stops at the first failing iteration, after recording it,
// or when ctx is done.
func Run(ctx context.Context, cfg Config, run RunFunc) ([]Record, error) {
	if cfg.Count <= 0 {
		return nil, errors.New("harness: count must be positive")
	}
	records := make([]Record, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		before, meterErr := sample(cfg.Meter)
		res, runErr := run(ctx, i)
		after, err := sample(cfg.Meter)
		if meterErr == nil {
			meterErr = err
		}

		rec := Record{
			Language:   res.Report.Language,
			Algorithm:  res.Report.Algorithm,
			Iteration:  i,
			Success:    runErr == nil && res.Mismatches == 0,
			Mismatches: res.Mismatches,
			Runtime:    res.Report.Seconds(),
			Package:    energy.Unavailable.Package,
			CPU:        energy.Unavailable.CPU,
			Features:   cfg.Features,
		}
		if rec.Language == "" {
			rec.Language = cfg.Language
		}
		if rec.Algorithm == "" {
			rec.Algorithm = cfg.Algorithm
		}
		if cfg.Meter != nil && meterErr == nil {
			r := cfg.Meter.Between(before, after)
			rec.Package, rec.CPU = r.Package, r.CPU
		} else if meterErr != nil {
			slog.Warn("energy sample failed", "iteration", i, "error", meterErr)
		}

		if err := WriteRecord(cfg.Output, rec); err != nil {
			return records, err
		}
		records = append(records, rec)
		slog.Info("iteration done", "iteration", i, "runtime", rec.Runtime, "success", rec.Success)

		if runErr != nil {
			return records, fmt.Errorf("iteration %d: %w", i, runErr)
		}
	}
	return records, nil
}

func sample(m *energy.Meter) (energy.Sample, error) {
	if m == nil {
		return energy.Sample{}, nil
	}
	return m.Sample()
}

// WriteRecord appends rec as a standalone YAML document.
func WriteRecord(w io.Writer, rec Record) error {
	b, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ReadRecords decodes every YAML document of r.
func ReadRecords(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
}
