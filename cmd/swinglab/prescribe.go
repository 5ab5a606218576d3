package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
	"github.com/swinglab/swinglab/pkg/surface"
)

func newPrescribeCmd(root *rootOpts) *cobra.Command {
	var (
		pillar    string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "prescribe <result.json|capture.json>",
		Short: "Prescribe drills for a scored swing",
		Long: `Re-runs drill selection for a saved result (or scores a capture first),
using the current drill catalog. With --pillar, lists every drill for that
pillar's weak metrics instead of the ranked top five.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := buildAnalyzer(root)
			if err != nil {
				return err
			}
			res, err := loadResult(args[0], an)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if pillar != "" {
				p := scoring.Pillar(pillar)
				switch p {
				case scoring.PillarAnchor, scoring.PillarStability, scoring.PillarWhip:
				default:
					return fmt.Errorf("unknown pillar %q (want anchor, stability or whip)", pillar)
				}
				recs := an.ForPillar(res.Report.Swing, p)
				if outputFmt == "json" {
					return encodeJSON(out, recs)
				}
				printRecommendations(out, recs)
				return nil
			}

			res.Prescription = an.Prescribe(res.Report.Swing)
			renderer, err := surface.ForFormat(outputFmt)
			if err != nil {
				return err
			}
			return renderer.Render(out, res)
		},
	}

	cmd.Flags().StringVar(&pillar, "pillar", "", "Restrict to one pillar: anchor, stability or whip")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json or markdown")

	return cmd
}

func printRecommendations(w io.Writer, recs []prescription.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No drills needed.")
		return
	}
	for i, rec := range recs {
		fmt.Fprintf(w, "%d. %s (%s)\n   %s\n", i+1, rec.Drill.Title, rec.Drill.ID, rec.Reason)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
