// Command matchbench benchmarks pattern-matching algorithms over a corpus of
// patterns and sequences and verifies their counts against an answer grid.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/matchbench/internal/config"
	"github.com/mhr3/matchbench/internal/logging"
)

// exitFatal is the status of a run that could not complete.
const exitFatal = 255

// statusError carries a non-zero exit status that is not a failure of the
// command itself, such as a mismatch count.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var (
	configFile string
	logLevel   string
	logJSON    bool
	language   string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "matchbench",
	Short: "Benchmark and verify pattern-matching algorithms",
	Long: `Matchbench runs a pattern-matching algorithm over every pattern and
sequence of a corpus, optionally checks each match count against an answer
grid, and reports the wall-clock runtime of the whole grid:

  language: go-gc
  algorithm: kmp
  runtime: 0.123456

Mismatches are written to stderr, one line each, and the exit status of
'run' is the number of mismatching pairs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile, os.Getenv)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("log-json") {
			cfg.LogJSON = logJSON
		}
		if flags.Changed("language") {
			cfg.Language = language
		}
		logging.Init(os.Stderr, cfg.LogLevel, cfg.LogJSON)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log as JSON")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "Language tag printed in reports (default go-<compiler>)")
}

func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	fmt.Fprintln(os.Stderr, err)
	return exitFatal
}
