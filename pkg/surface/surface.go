// Package surface defines output rendering for swing analysis results.
// Implementations handle different output targets: terminal, markdown, JSON.
package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/scoring"
)

// Renderer produces formatted output from an analysis Result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *analysis.Result) error
}

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &TerminalRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}

func pillarTitle(p scoring.Pillar) string {
	switch p {
	case scoring.PillarAnchor:
		return "Anchor"
	case scoring.PillarStability:
		return "Stability"
	case scoring.PillarWhip:
		return "Whip"
	default:
		return string(p)
	}
}
