package surface

import (
	"encoding/json"
	"io"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/scoring"
)

// JSONRenderer marshals a Result to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *analysis.Result) error {
	return writeJSON(w, result)
}

// RenderComparison writes metric deltas as indented JSON.
func (r *JSONRenderer) RenderComparison(w io.Writer, deltas []scoring.MetricDelta) error {
	return writeJSON(w, deltas)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
