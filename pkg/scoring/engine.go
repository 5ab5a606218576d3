package scoring

import (
	"fmt"

	"github.com/swinglab/swinglab/pkg/kinematics"
)

// Engine runs the kinetic sequence and composite scorers over one swing.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	policy    Policy
	sequence  *SequenceScorer
	composite *CompositeScorer
}

// NewEngine creates a scoring engine. With no metric definitions the
// default catalogue is used.
func NewEngine(p Policy, defs ...MetricDef) *Engine {
	return &Engine{
		policy:    p,
		sequence:  NewSequenceScorer(p),
		composite: NewCompositeScorer(p.Pillars, defs...),
	}
}

// Policy returns the grading policy of the engine.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Score validates the kinematics record and produces a complete Report.
// Missing curves are zero-filled; a record with no curves at all leaves the
// kinetic sequence sub-metric at its neutral default.
func (e *Engine) Score(rec kinematics.Record, m Measurements) (*Report, error) {
	curves, err := rec.Normalize()
	if err != nil {
		return nil, fmt.Errorf("validating kinematics: %w", err)
	}

	seq := e.sequence.Score(curves)

	var seqScore *float64
	if !rec.Empty() {
		seqScore = &seq.Overall
	}
	swing := e.composite.Score(m, seqScore)

	return &Report{
		Sequence:    seq,
		Swing:       swing,
		Severity:    Classify(swing.Overall),
		BandVersion: BandTableVersion,
	}, nil
}
