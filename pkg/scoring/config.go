package scoring

import "github.com/swinglab/swinglab/pkg/kinematics"

// PolicyVersion identifies the grading constants below. Bump it whenever a
// threshold or weight changes so stored reports stay auditable.
const PolicyVersion = "2024.1"

// Window is an expected normalized-time range for a segment's peak.
type Window struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether t lies within the window, bounds included.
func (w Window) Contains(t float64) bool {
	return w.Min <= t && t <= w.Max
}

// Midpoint returns the center of the window.
func (w Window) Midpoint() float64 {
	return (w.Min + w.Max) / 2
}

// PillarWeights controls how category scores combine into the overall score.
type PillarWeights struct {
	Anchor    float64 `yaml:"anchor" json:"anchor"`
	Stability float64 `yaml:"stability" json:"stability"`
	Whip      float64 `yaml:"whip" json:"whip"`
}

// SequenceWeights controls how the four kinetic sequence components combine.
type SequenceWeights struct {
	Order      float64 `yaml:"order" json:"order"`
	Spacing    float64 `yaml:"spacing" json:"spacing"`
	AccelDecel float64 `yaml:"accel_decel" json:"accel_decel"`
	Energy     float64 `yaml:"energy" json:"energy"`
}

// Policy holds every grading constant of the engine.
type Policy struct {
	Version string

	// Curve analysis
	DecelDropRatio       float64 // a sample below peak*ratio starts deceleration
	DecelFallbackSamples int     // decel start when no sample drops, capped at the curve end

	// Segment grading
	DecelGapScale  float64 // converts normalized decel gap to frame-like units
	DecelGapMin    float64 // exclusive
	DecelGapMax    float64 // exclusive
	GradeCDistance float64 // peak distance from window midpoint
	GradeDDistance float64
	Windows        map[kinematics.Segment]Window

	// Energy transfer
	NearPeakTime  float64 // normalized-time radius around a segment's own peak
	NearPeakRatio float64 // fraction of a segment's own peak velocity

	Sequence SequenceWeights
	Pillars  PillarWeights
}

// Defaults returns the default grading policy.
func Defaults() Policy {
	return Policy{
		Version: PolicyVersion,

		DecelDropRatio:       0.9,
		DecelFallbackSamples: 5,

		DecelGapScale:  100,
		DecelGapMin:    3,
		DecelGapMax:    20,
		GradeCDistance: 0.15,
		GradeDDistance: 0.25,
		Windows: map[kinematics.Segment]Window{
			kinematics.SegmentPelvis:  {Min: 0.30, Max: 0.45},
			kinematics.SegmentTorso:   {Min: 0.40, Max: 0.55},
			kinematics.SegmentLeadArm: {Min: 0.50, Max: 0.65},
			kinematics.SegmentHands:   {Min: 0.65, Max: 0.80},
		},

		NearPeakTime:  0.1,
		NearPeakRatio: 0.8,

		Sequence: SequenceWeights{
			Order:      0.35,
			Spacing:    0.25,
			AccelDecel: 0.20,
			Energy:     0.20,
		},
		Pillars: PillarWeights{
			Anchor:    0.40,
			Stability: 0.30,
			Whip:      0.30,
		},
	}
}
