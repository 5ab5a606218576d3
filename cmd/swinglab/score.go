package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swinglab/swinglab/pkg/surface"
)

func newScoreCmd(root *rootOpts) *cobra.Command {
	var (
		measurements string
		athlete      string
		outputFmt    string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "score <capture.json>",
		Short: "Score a swing capture and prescribe drills",
		Long: `Grades the kinetic sequence from the capture's velocity curves, scores every
pillar metric from its measurements, and prescribes up to five drills.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := surface.ForFormat(outputFmt)
			if err != nil {
				return err
			}
			an, err := buildAnalyzer(root)
			if err != nil {
				return err
			}

			c, err := loadCapture(args[0])
			if err != nil {
				return err
			}
			if measurements != "" {
				if err := mergeMeasurements(c, measurements); err != nil {
					return err
				}
			}
			if athlete != "" {
				c.AthleteID = athlete
			}

			fmt.Fprintf(os.Stderr, "Scoring swing %s...\n", c.ID)
			res, err := an.Analyze(c)
			if err != nil {
				return fmt.Errorf("scoring: %w", err)
			}

			if save {
				saveResult(res)
			}
			if err := renderer.Render(cmd.OutOrStdout(), res); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&measurements, "measurements", "", "YAML file of measurement overrides (key: value)")
	cmd.Flags().StringVar(&athlete, "athlete", "", "Athlete ID to attach to the result")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")
	cmd.Flags().BoolVar(&save, "save", true, "Save the result to the local report cache")

	return cmd
}
