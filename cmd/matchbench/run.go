package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mhr3/matchbench/bench"
	"github.com/mhr3/matchbench/corpus"
	"github.com/mhr3/matchbench/match"
)

var (
	gap         int
	gapAlphabet string
	corpusRanks bool
)

var runCmd = &cobra.Command{
	Use:   "run ALGORITHM SEQUENCES PATTERNS [ANSWERS]",
	Short: "Run one algorithm over a corpus",
	Long: `Run times ALGORITHM over every pattern and sequence. With an ANSWERS
file every count is verified, and the exit status is the number of
mismatching pattern/sequence pairs.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := prepare(cmd, args)
		if err != nil {
			return err
		}
		res, err := job.algo.Run(job.corpus, job.options(cmd))
		if err != nil {
			return err
		}
		if res.Status() != 0 {
			return &statusError{code: res.Status()}
		}
		return nil
	},
}

func init() {
	addAlgorithmFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addAlgorithmFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&gap, "gap", 1, "dfa_gap: maximum number of codes between pattern codes")
	cmd.Flags().StringVar(&gapAlphabet, "gap-alphabet", match.DefaultGapAlphabet, "dfa_gap: codes a gap may consist of")
	cmd.Flags().BoolVar(&corpusRanks, "corpus-ranks", false, "rare_pair: rank codes by their frequency in the sequences")
}

// job is a validated, loaded run.
type job struct {
	algo   match.Algorithm
	corpus bench.Corpus
}

func (j job) options(cmd *cobra.Command) bench.Options {
	return bench.Options{
		Language:    cfg.Language,
		Algorithm:   j.algo.Name,
		Report:      cmd.OutOrStdout(),
		Diagnostics: cmd.ErrOrStderr(),
	}
}

func usage(cmd *cobra.Command, algo string) string {
	return fmt.Sprintf("%s %s %s <sequences> <patterns> [ <answers> ]",
		cmd.Root().Name(), cmd.Name(), algo)
}

// prepare validates the positional arguments, resolves the algorithm, and
// loads the corpus. Nothing is read before the argument count is checked.
func prepare(cmd *cobra.Command, args []string) (job, error) {
	if len(args) == 0 {
		return job{}, &bench.UsageError{Usage: usage(cmd, "<algorithm>")}
	}
	in, err := bench.CheckArgs(usage(cmd, args[0]), args[1:])
	if err != nil {
		return job{}, err
	}

	settings := match.DefaultSettings()
	settings.Gap = cfg.Gap
	settings.GapAlphabet = cfg.GapAlphabet
	if cmd.Flags().Changed("gap") {
		settings.Gap = gap
	}
	if cmd.Flags().Changed("gap-alphabet") {
		settings.GapAlphabet = gapAlphabet
	}

	algo, err := match.Lookup(args[0], settings)
	if err != nil {
		return job{}, err
	}

	c, err := load(in)
	if err != nil {
		return job{}, err
	}
	if corpusRanks {
		settings.Ranks = match.BuildRanks(c.Sequences)
		if algo, err = match.Lookup(args[0], settings); err != nil {
			return job{}, err
		}
	}
	if algo.Alphabet > 0 && !corpus.IsASCII(c.Patterns) {
		return job{}, fmt.Errorf("%s: patterns must be ASCII: %w", algo.Name, match.ErrAlphabet)
	}
	return job{algo: algo, corpus: c}, nil
}

func load(in bench.Inputs) (bench.Corpus, error) {
	var c bench.Corpus
	var err error
	if c.Sequences, err = corpus.ReadSequences(in.Sequences); err != nil {
		return c, err
	}
	if c.Patterns, err = corpus.ReadPatterns(in.Patterns); err != nil {
		return c, err
	}
	if in.HasAnswers {
		if c.Answers, err = corpus.ReadAnswers(in.Answers); err != nil {
			return c, err
		}
	}
	slog.Info("corpus loaded",
		"sequences", len(c.Sequences),
		"patterns", len(c.Patterns),
		"verify", in.HasAnswers)
	return c, nil
}
