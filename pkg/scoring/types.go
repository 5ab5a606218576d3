// Package scoring implements the swing quality scoring engine.
// It turns segment velocity curves and biomechanical measurements into
// explainable 0-100 scores grouped by pillar.
package scoring

// Severity is the four-color band of a 0-100 score.
type Severity string

const (
	SeverityGreen  Severity = "green"
	SeverityYellow Severity = "yellow"
	SeverityOrange Severity = "orange"
	SeverityRed    Severity = "red"
)

// Triage is the coarse three-level split used to prioritize coaching.
type Triage string

const (
	TriageCritical Triage = "critical"
	TriageModerate Triage = "moderate"
	TriageAdequate Triage = "adequate"
)

// Grade is a letter grade for one segment of the kinetic chain.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Pillar is one of the three top-level swing quality categories.
type Pillar string

const (
	PillarAnchor    Pillar = "anchor"
	PillarStability Pillar = "stability"
	PillarWhip      Pillar = "whip"
)

// Pillars lists the pillars in enumeration order. Tie-breaking across
// pillars follows this order.
var Pillars = []Pillar{PillarAnchor, PillarStability, PillarWhip}

// MetricID is the stable key of a sub-metric.
type MetricID string

// SubMetricScore is one scored sub-metric. Score is always within [0,100].
type SubMetricScore struct {
	ID          MetricID `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Score       float64  `json:"score" validate:"gte=0,lte=100"`
	Severity    Severity `json:"severity"`
}

// CategoryScore is the aggregate of one pillar's sub-metrics.
type CategoryScore struct {
	Score   float64          `json:"score" validate:"gte=0,lte=100"`
	Metrics []SubMetricScore `json:"metrics" validate:"dive"`
}

// SwingScore is the pillar breakdown of one swing.
// Immutable once computed.
type SwingScore struct {
	Anchor    CategoryScore `json:"anchor"`
	Stability CategoryScore `json:"stability"`
	Whip      CategoryScore `json:"whip"`
	Overall   float64       `json:"overall" validate:"gte=0,lte=100"`
}

// Category returns the category score for a pillar.
func (s SwingScore) Category(p Pillar) CategoryScore {
	switch p {
	case PillarAnchor:
		return s.Anchor
	case PillarStability:
		return s.Stability
	case PillarWhip:
		return s.Whip
	default:
		return CategoryScore{}
	}
}

// AllMetrics flattens the sub-metrics of every pillar in enumeration order.
func (s SwingScore) AllMetrics() []SubMetricScore {
	var out []SubMetricScore
	for _, p := range Pillars {
		out = append(out, s.Category(p).Metrics...)
	}
	return out
}

// SequencePeak is the peak and deceleration analysis of one segment.
type SequencePeak struct {
	Segment        string  `json:"segment"`
	PeakTime       float64 `json:"peak_time"`
	PeakVelocity   float64 `json:"peak_velocity"`
	DecelStartTime float64 `json:"decel_start_time"`
	Grade          Grade   `json:"grade"`
	Message        string  `json:"message"`
}

// SequenceSubScore is one of the four components of the kinetic sequence score.
type SequenceSubScore struct {
	Score    float64  `json:"score"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// PeakOrderScore reports whether the chain fired proximal to distal.
type PeakOrderScore struct {
	SequenceSubScore
	InCorrectOrder bool `json:"in_correct_order"`
}

// PeakSpacingScore reports the average gap between consecutive peaks.
type PeakSpacingScore struct {
	SequenceSubScore
	AverageGap float64 `json:"average_gap"`
}

// EnergyTransferScore reports how much the segments' near-peak windows overlap.
type EnergyTransferScore struct {
	SequenceSubScore
	OverlapPercent float64 `json:"overlap_percent"`
}

// ChartPoint is one time step of the velocity curves, for plotting only.
type ChartPoint struct {
	Time    float64 `json:"time"`
	Pelvis  float64 `json:"pelvis"`
	Torso   float64 `json:"torso"`
	LeadArm float64 `json:"lead_arm"`
	Hands   float64 `json:"hands"`
}

// KineticSequenceScore is the full kinetic chain analysis of one swing.
type KineticSequenceScore struct {
	Overall        float64             `json:"overall"`
	Severity       Severity            `json:"severity"`
	PeakOrder      PeakOrderScore      `json:"peak_order"`
	PeakSpacing    PeakSpacingScore    `json:"peak_spacing"`
	AccelDecel     SequenceSubScore    `json:"accel_decel"`
	EnergyTransfer EnergyTransferScore `json:"energy_transfer"`
	Peaks          []SequencePeak      `json:"peaks"`
	Chart          []ChartPoint        `json:"chart,omitempty"`
	Summary        string              `json:"summary"`
}

// Report is the complete output of scoring one swing.
type Report struct {
	Sequence    KineticSequenceScore `json:"sequence"`
	Swing       SwingScore           `json:"swing"`
	Severity    Severity             `json:"severity"`
	BandVersion string               `json:"band_version"`
}
