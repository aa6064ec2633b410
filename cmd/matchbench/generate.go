package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhr3/matchbench/corpus"
)

var (
	genSeed      int64
	genSequences string
	genPatterns  string
	genAnswers   string
	genConfig    = corpus.DefaultGenerateConfig()
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random DNA corpus with its answer grid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		seed := genSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		fmt.Fprintf(out, "Generating %d sequences of length %d ± %d and %d patterns of length %d ± %d (seed=%d)...\n",
			genConfig.Count, genConfig.Length, genConfig.Variance,
			genConfig.PatternCount, genConfig.PatternLength, genConfig.PatternVariance, seed)

		g, err := corpus.Generate(genConfig, rand.NewSource(seed))
		if err != nil {
			return err
		}

		avg := 0.0
		for i, n := range g.Matched {
			pct := float64(n) / float64(len(g.Sequences))
			fmt.Fprintf(out, "    Pattern %d/%d: %.2f%% matching (%d).\n", i+1, len(g.Patterns), pct*100, n)
			avg += pct
		}
		if len(g.Matched) > 0 {
			fmt.Fprintf(out, "Average matching: %.2f%%.\n", avg/float64(len(g.Matched))*100)
		}

		if err := writeFile(genSequences, func(f *os.File) error { return corpus.WriteLines(f, g.Sequences) }); err != nil {
			return err
		}
		if err := writeFile(genPatterns, func(f *os.File) error { return corpus.WriteLines(f, g.Patterns) }); err != nil {
			return err
		}
		return writeFile(genAnswers, func(f *os.File) error { return corpus.WriteAnswers(f, g.Answers, len(g.Sequences)) })
	},
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func init() {
	f := generateCmd.Flags()
	f.Int64VarP(&genSeed, "seed", "s", 0, "Random seed (default: time based)")
	f.StringVarP(&genSequences, "file", "f", "sequences.txt", "File to write sequence data to")
	f.StringVarP(&genPatterns, "patterns", "p", "patterns.txt", "File to write pattern data to")
	f.StringVarP(&genAnswers, "answers", "a", "answers.txt", "File to write answers data to")
	f.IntVarP(&genConfig.Count, "count", "c", genConfig.Count, "Number of sequences to generate")
	f.IntVar(&genConfig.PatternCount, "pattern-count", genConfig.PatternCount, "Number of patterns to generate")
	f.IntVarP(&genConfig.Length, "length", "l", genConfig.Length, "Length of each sequence")
	f.IntVar(&genConfig.PatternLength, "pattern-length", genConfig.PatternLength, "Length of each pattern")
	f.IntVarP(&genConfig.Variance, "line-variance", "v", genConfig.Variance, "Variance for sequence length")
	f.IntVar(&genConfig.PatternVariance, "pattern-variance", genConfig.PatternVariance, "Variance for pattern length")
	rootCmd.AddCommand(generateCmd)
}
