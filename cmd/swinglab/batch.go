package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swinglab/swinglab/internal/batch"
)

func newBatchCmd(root *rootOpts) *cobra.Command {
	var (
		workers   int
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Score every capture in a directory",
		Long: `Scores all *.json captures in a directory concurrently and prints a
summary. Any invalid capture aborts the whole batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := buildAnalyzer(root)
			if err != nil {
				return err
			}
			captures, err := batch.LoadDir(args[0])
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = loadConfig(root.configPath).Server.Workers
			}

			fmt.Fprintf(os.Stderr, "Scoring %d swings...\n", len(captures))
			results, err := batch.NewRunner(an, workers).Run(cmd.Context(), captures)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			summary := batch.Summarize(results)

			out := cmd.OutOrStdout()
			if outputFmt == "json" {
				return encodeJSON(out, summary)
			}

			for _, r := range results {
				fmt.Fprintf(out, "%-24s %5.0f  %-6s  %d drills\n",
					r.ID, r.Report.Swing.Overall, r.Report.Severity, len(r.Prescription.Recommendations))
			}
			if summary.Count > 0 {
				fmt.Fprintf(out, "\n%d swings, mean %.1f, best %s, worst %s\n",
					summary.Count, summary.MeanOverall, summary.Best, summary.Worst)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (default: config server.workers)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
