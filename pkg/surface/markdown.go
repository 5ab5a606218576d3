package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/scoring"
)

// maxMarkdownFindings caps the weakest-metric list in the coach summary.
const maxMarkdownFindings = 5

// MarkdownRenderer produces a coach-facing markdown summary of a Result.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *analysis.Result) error {
	_, err := io.WriteString(w, BuildMarkdownSummary(result))
	return err
}

// BuildMarkdownSummary formats a Result as a markdown document.
func BuildMarkdownSummary(result *analysis.Result) string {
	var sb strings.Builder
	report := result.Report
	swing := report.Swing

	fmt.Fprintf(&sb, "## Swing score %.0f %s\n\n", swing.Overall, severityIcon(report.Severity))

	sb.WriteString("### Pillars\n\n")
	sb.WriteString("| Pillar | Score |\n|--------|-------|\n")
	for _, p := range scoring.Pillars {
		cat := swing.Category(p)
		fmt.Fprintf(&sb, "| %s | %.0f |\n", pillarTitle(p), cat.Score)
	}
	sb.WriteString("\n")

	// Weakest metrics first, already triaged in encounter order.
	ctx := result.Prescription.Context
	weak := append(append([]scoring.SubMetricScore{}, ctx.Critical...), ctx.Moderate...)
	if len(weak) > 0 {
		sb.WriteString("### Needs work\n\n")
		for i, m := range weak {
			if i >= maxMarkdownFindings {
				fmt.Fprintf(&sb, "_... and %d more_\n", len(weak)-maxMarkdownFindings)
				break
			}
			fmt.Fprintf(&sb, "- %s **%s** (%.1f): %s\n", severityIcon(m.Severity), m.Label, m.Score, m.Description)
		}
		sb.WriteString("\n")
	}

	seq := report.Sequence
	fmt.Fprintf(&sb, "### Kinetic sequence %.0f\n\n", seq.Overall)
	if seq.Summary != "" {
		sb.WriteString(seq.Summary + "\n\n")
	}

	if recs := result.Prescription.Recommendations; len(recs) > 0 {
		sb.WriteString("### Drills\n\n")
		for i, rec := range recs {
			fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, rec.Drill.Title, rec.Reason)
		}
	}

	return sb.String()
}

func severityIcon(sev scoring.Severity) string {
	switch sev {
	case scoring.SeverityGreen:
		return ":green_circle:"
	case scoring.SeverityYellow:
		return ":yellow_circle:"
	case scoring.SeverityOrange:
		return ":orange_circle:"
	default:
		return ":red_circle:"
	}
}
