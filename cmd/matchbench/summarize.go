package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mhr3/matchbench/harness"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [FILE]",
	Short: "Validate and summarize harness records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := harness.DefaultOutput
		if len(args) == 1 {
			path = args[0]
		}
		out := cmd.OutOrStdout()

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		records, err := harness.ReadRecords(f)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(out, "%d experiment records read from %s.\n", len(records), path)

		if problems := harness.Validate(records); len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintln(out, "  "+p)
			}
			fmt.Fprintln(out, "Validation failed.")
			return &statusError{code: 1}
		}

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(harness.Summarize(records)); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
