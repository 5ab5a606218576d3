package main

import (
	"github.com/spf13/cobra"

	"github.com/swinglab/swinglab/pkg/scoring"
	"github.com/swinglab/swinglab/pkg/surface"
)

func newCompareCmd(root *rootOpts) *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "compare <before> <after>",
		Short: "Compare two swings metric by metric",
		Long: `Compares two saved results or captures. Captures are scored first. Metrics
present in only one of the two swings are left out.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := buildAnalyzer(root)
			if err != nil {
				return err
			}
			before, err := loadResult(args[0], an)
			if err != nil {
				return err
			}
			after, err := loadResult(args[1], an)
			if err != nil {
				return err
			}

			deltas := scoring.Compare(before.Report.Swing, after.Report.Swing)
			if outputFmt == "json" {
				return (&surface.JSONRenderer{}).RenderComparison(cmd.OutOrStdout(), deltas)
			}
			return (&surface.TerminalRenderer{}).RenderComparison(cmd.OutOrStdout(), deltas)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
