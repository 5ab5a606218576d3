package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/scoring"
)

// TerminalRenderer renders a Result as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorOrange = "\033[38;5;208m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func severityColor(sev scoring.Severity) string {
	if noColor() {
		return ""
	}
	switch sev {
	case scoring.SeverityGreen:
		return colorGreen
	case scoring.SeverityYellow:
		return colorYellow
	case scoring.SeverityOrange:
		return colorOrange
	case scoring.SeverityRed:
		return colorRed
	default:
		return ""
	}
}

func gradeColor(grade scoring.Grade) string {
	if noColor() {
		return ""
	}
	switch grade {
	case scoring.GradeA, scoring.GradeB:
		return colorGreen
	case scoring.GradeC:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *analysis.Result) error {
	report := result.Report
	swing := report.Swing

	title := "Swing"
	if result.ID != "" {
		title = "Swing " + result.ID
	}
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("%s: Overall %s (%s)", title,
			colored(fmt.Sprintf("%.0f", swing.Overall), severityColor(report.Severity)),
			report.Severity)))

	// Pillars
	for _, p := range scoring.Pillars {
		cat := swing.Category(p)
		sev := scoring.Classify(cat.Score)
		fmt.Fprintf(w, "%s %s\n", bold(pillarTitle(p)),
			colored(fmt.Sprintf("%.0f", cat.Score), severityColor(sev)))
		for _, m := range cat.Metrics {
			fmt.Fprintf(w, "  %s %-28s %5.1f\n",
				colored("●", severityColor(m.Severity)), m.Label, m.Score)
		}
		fmt.Fprintln(w)
	}

	// Kinetic sequence
	seq := report.Sequence
	fmt.Fprintf(w, "%s %s\n", bold("Kinetic sequence"),
		colored(fmt.Sprintf("%.0f", seq.Overall), severityColor(seq.Severity)))
	fmt.Fprintf(w, "  order %.0f / spacing %.0f / accel-decel %.0f / energy %.0f\n",
		seq.PeakOrder.Score, seq.PeakSpacing.Score, seq.AccelDecel.Score, seq.EnergyTransfer.Score)
	for _, pk := range seq.Peaks {
		fmt.Fprintf(w, "  [%s] %-9s peak %.2f  decel %.2f  %s\n",
			colored(string(pk.Grade), gradeColor(pk.Grade)), pk.Segment,
			pk.PeakTime, pk.DecelStartTime, dim(pk.Message))
	}
	if seq.Summary != "" {
		for _, line := range wrapText(seq.Summary, 70) {
			fmt.Fprintf(w, "  %s\n", dim(line))
		}
	}
	fmt.Fprintln(w)

	// Drills
	recs := result.Prescription.Recommendations
	if len(recs) == 0 {
		fmt.Fprintln(w, "No drills prescribed.")
		fmt.Fprintln(w)
		return nil
	}
	fmt.Fprintln(w, "Prescribed drills:")
	for i, rec := range recs {
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, bold(rec.Drill.Title), dim("("+rec.Drill.ID+")"))
		fmt.Fprintf(w, "     %s\n", rec.Reason)
		if rec.Drill.Reps != "" {
			fmt.Fprintf(w, "     %s\n", dim("Reps: "+rec.Drill.Reps))
		}
	}
	fmt.Fprintln(w)

	return nil
}

// RenderComparison writes a before/after table of metric deltas.
func (r *TerminalRenderer) RenderComparison(w io.Writer, deltas []scoring.MetricDelta) error {
	if len(deltas) == 0 {
		fmt.Fprintln(w, "Nothing to compare.")
		return nil
	}
	fmt.Fprintln(w, bold("Swing comparison"))
	for _, d := range deltas {
		sign := "+"
		if d.Delta < 0 {
			sign = ""
		}
		color := ""
		switch d.Direction {
		case scoring.DirectionImprovement:
			color = colorGreen
		case scoring.DirectionDecline:
			color = colorRed
		}
		if noColor() {
			color = ""
		}
		fmt.Fprintf(w, "  %-28s %5.1f -> %5.1f  %s\n", d.Label, d.Before, d.After,
			colored(fmt.Sprintf("(%s%.1f)", sign, d.Delta), color))
	}
	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
