package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mhr3/matchbench/match"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available algorithms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, a := range match.Registry(match.DefaultSettings()) {
			alphabet := "any"
			if a.Alphabet > 0 {
				alphabet = fmt.Sprintf("<%d", a.Alphabet)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, alphabet, a.Summary)
		}
		return w.Flush()
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show runtime, CPU and energy counter information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeInfo(cmd.OutOrStdout(), cfg.PowercapRoot)
	},
}

func init() {
	rootCmd.AddCommand(listCmd, infoCmd)
}
