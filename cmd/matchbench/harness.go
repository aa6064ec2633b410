package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mhr3/matchbench/bench"
	"github.com/mhr3/matchbench/harness"
	"github.com/mhr3/matchbench/internal/energy"
	"github.com/mhr3/matchbench/internal/sysinfo"
)

var (
	runCount     int
	outputFile   string
	powercapRoot string
)

var harnessCmd = &cobra.Command{
	Use:   "harness ALGORITHM SEQUENCES PATTERNS [ANSWERS]",
	Short: "Repeat a run and append one YAML record per iteration",
	Long: `Harness runs ALGORITHM repeatedly over the same corpus. Each iteration is
appended to the output file as a YAML document holding the runtime, the
mismatch count, and, where the RAPL powercap counters are readable, the
package and core energy in joules.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := prepare(cmd, args)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("count") {
			cfg.Runs = runCount
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = outputFile
		}
		if cmd.Flags().Changed("powercap-root") {
			cfg.PowercapRoot = powercapRoot
		}

		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()

		meter, err := energy.NewMeter(cfg.PowercapRoot)
		if err != nil {
			slog.Warn("recording without energy", "error", err)
			meter = nil
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		opts := job.options(cmd)
		hcfg := harness.Config{
			Count:     cfg.Runs,
			Language:  opts.Language,
			Algorithm: job.algo.Name,
			Output:    f,
			Meter:     meter,
			Features:  sysinfo.Features(),
		}
		if hcfg.Language == "" {
			hcfg.Language = bench.DefaultLanguage()
		}
		records, err := harness.Run(ctx, hcfg, func(ctx context.Context, iteration int) (bench.Result, error) {
			return job.algo.Run(job.corpus, opts)
		})
		if errors.Is(err, context.Canceled) {
			slog.Warn("harness interrupted", "completed", len(records))
			return nil
		}
		if err != nil {
			return err
		}
		if problems := harness.Validate(records); len(problems) > 0 {
			for _, p := range problems {
				io.WriteString(cmd.ErrOrStderr(), p+"\n")
			}
			return &statusError{code: 1}
		}
		return nil
	},
}

func init() {
	addAlgorithmFlags(harnessCmd)
	harnessCmd.Flags().IntVarP(&runCount, "count", "n", 10, "Number of iterations")
	harnessCmd.Flags().StringVarP(&outputFile, "output", "o", harness.DefaultOutput, "File records are appended to")
	harnessCmd.Flags().StringVar(&powercapRoot, "powercap-root", energy.DefaultRoot, "Powercap sysfs directory")
	rootCmd.AddCommand(harnessCmd)
}
