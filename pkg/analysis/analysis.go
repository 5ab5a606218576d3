// Package analysis runs the full swing pipeline: kinematics validation,
// scoring and drill prescription.
package analysis

import (
	"fmt"

	"github.com/swinglab/swinglab/pkg/kinematics"
	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
)

// Result is the complete analysis of one swing.
type Result struct {
	ID           string                    `json:"id,omitempty"`
	AthleteID    string                    `json:"athlete_id,omitempty"`
	Report       scoring.Report            `json:"report"`
	Prescription prescription.Prescription `json:"prescription"`
}

// Analyzer combines a scoring engine with a drill prescriber. Both are
// stateless, so an Analyzer may be shared across goroutines.
type Analyzer struct {
	scorer     *scoring.Engine
	prescriber *prescription.Engine
}

// New creates an Analyzer.
func New(scorer *scoring.Engine, prescriber *prescription.Engine) *Analyzer {
	return &Analyzer{scorer: scorer, prescriber: prescriber}
}

// Analyze scores a capture and prescribes drills for it.
func (a *Analyzer) Analyze(c *kinematics.Capture) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("capture is nil")
	}

	report, err := a.scorer.Score(c.Kinematics, scoring.Measurements(c.Measurements))
	if err != nil {
		return nil, fmt.Errorf("scoring swing %s: %w", c.ID, err)
	}

	return &Result{
		ID:           c.ID,
		AthleteID:    c.AthleteID,
		Report:       *report,
		Prescription: a.prescriber.Prescribe(report.Swing),
	}, nil
}

// Prescribe runs only the prescription step for an already scored swing.
func (a *Analyzer) Prescribe(s scoring.SwingScore) prescription.Prescription {
	return a.prescriber.Prescribe(s)
}

// ForPillar recommends drills for one pillar of the swing.
func (a *Analyzer) ForPillar(s scoring.SwingScore, p scoring.Pillar) []prescription.Recommendation {
	return a.prescriber.ForPillar(s, p)
}
