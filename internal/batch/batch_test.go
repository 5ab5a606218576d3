package batch

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/kinematics"
	"github.com/swinglab/swinglab/pkg/scoring"
)

// stubAnalyzer scores a capture by its "overall" measurement.
type stubAnalyzer struct {
	inFlight, peak atomic.Int32
}

func (s *stubAnalyzer) Analyze(c *kinematics.Capture) (*analysis.Result, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if _, bad := c.Measurements["fail"]; bad {
		return nil, kinematics.ErrCurveLengthMismatch
	}
	overall := c.Measurements["overall"]
	return &analysis.Result{
		ID: c.ID,
		Report: scoring.Report{
			Swing:    scoring.SwingScore{Overall: overall},
			Severity: scoring.Classify(overall),
		},
	}, nil
}

func captures(overalls ...float64) []*kinematics.Capture {
	out := make([]*kinematics.Capture, len(overalls))
	for i, o := range overalls {
		out[i] = &kinematics.Capture{
			ID:           string(rune('a' + i)),
			Measurements: map[string]float64{"overall": o},
		}
	}
	return out
}

func TestRunPreservesInputOrder(t *testing.T) {
	in := captures(10, 90, 50, 70, 30, 85, 45, 60)
	an := &stubAnalyzer{}

	results, err := NewRunner(an, 3).Run(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, results, len(in))
	for i, r := range results {
		assert.Equal(t, in[i].ID, r.ID)
		assert.Equal(t, in[i].Measurements["overall"], r.Report.Swing.Overall)
	}
	assert.LessOrEqual(t, an.peak.Load(), int32(3), "worker limit exceeded")
}

func TestRunAbortsOnFailure(t *testing.T) {
	in := captures(10, 20, 30)
	in[1].Measurements["fail"] = 1

	_, err := NewRunner(&stubAnalyzer{}, 2).Run(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kinematics.ErrCurveLengthMismatch))
	assert.Contains(t, err.Error(), "swing 1 (b)")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(&stubAnalyzer{}, 1).Run(ctx, captures(10, 20))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunEmpty(t *testing.T) {
	results, err := NewRunner(&stubAnalyzer{}, 0).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, kinematics.SaveCapture(filepath.Join(dir, "b-swing.json"), &kinematics.Capture{}))
	require.NoError(t, kinematics.SaveCapture(filepath.Join(dir, "a-swing.json"), &kinematics.Capture{ID: "explicit"}))
	require.NoError(t, kinematics.SaveCapture(filepath.Join(dir, "notes.yaml"), &kinematics.Capture{}))

	got, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "explicit", got[0].ID)
	assert.Equal(t, "b-swing", got[1].ID)
}

func TestSummarize(t *testing.T) {
	results, err := NewRunner(&stubAnalyzer{}, 2).Run(context.Background(), captures(40, 90, 65))
	require.NoError(t, err)

	s := Summarize(results)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 65.0, s.MeanOverall, 1e-9)
	assert.Equal(t, "b", s.Best)
	assert.Equal(t, "a", s.Worst)
	assert.Equal(t, 1, s.BySeverity["green"])
	assert.Equal(t, 1, s.BySeverity["yellow"])
	assert.Equal(t, 1, s.BySeverity["orange"])

	assert.Equal(t, 0, Summarize(nil).Count)
}
