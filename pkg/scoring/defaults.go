package scoring

// BandTableVersion identifies the target ranges in DefaultMetrics.
const BandTableVersion = "bands-2024.1"

// Sub-metric identifiers.
const (
	MetricCOMForwardMovement    MetricID = "com_forward_movement"
	MetricStrideLength          MetricID = "stride_length"
	MetricFrontKneeAngle        MetricID = "front_knee_angle"
	MetricHeadMovement          MetricID = "head_movement"
	MetricPelvisTorsoSeparation MetricID = "pelvis_torso_separation"
	MetricTrunkTilt             MetricID = "trunk_tilt"
	MetricKineticSequence       MetricID = "kinetic_sequence"
	MetricBatLagAngle           MetricID = "bat_lag_angle"
	MetricHandSpeed             MetricID = "hand_speed"
	MetricAttackAngle           MetricID = "attack_angle"
	MetricTimeToContact         MetricID = "time_to_contact"
)

// MetricDef describes how one sub-metric is scored.
type MetricDef struct {
	ID          MetricID
	Pillar      Pillar
	Label       string
	Description string
	// Measurement is the key in the measurement set. Empty for metrics
	// derived from the kinetic sequence rather than from a band.
	Measurement string
	Band        MetricBand
}

// Banded reports whether the metric is scored against a band table.
func (d MetricDef) Banded() bool {
	return d.Measurement != ""
}

// DefaultMetrics returns the standard sub-metric catalogue, grouped by
// pillar in enumeration order.
func DefaultMetrics() []MetricDef {
	return []MetricDef{
		// Anchor
		{
			ID:          MetricCOMForwardMovement,
			Pillar:      PillarAnchor,
			Label:       "Center of mass forward movement",
			Description: "How far the center of mass drifts toward the pitcher, as a percent of stride.",
			Measurement: "com_forward_movement_pct",
			Band: MetricBand{
				Elite:      Range{Min: 25, Max: 35},
				Good:       Range{Min: 20, Max: 40},
				Acceptable: Range{Min: 15, Max: 45},
			},
		},
		{
			ID:          MetricStrideLength,
			Pillar:      PillarAnchor,
			Label:       "Stride length",
			Description: "Stride length as a percent of body height.",
			Measurement: "stride_length_pct",
			Band: MetricBand{
				Elite:      Range{Min: 70, Max: 85},
				Good:       Range{Min: 60, Max: 90},
				Acceptable: Range{Min: 50, Max: 100},
			},
		},
		{
			ID:          MetricFrontKneeAngle,
			Pillar:      PillarAnchor,
			Label:       "Front knee angle",
			Description: "Lead knee flexion at contact, in degrees (180 is fully straight).",
			Measurement: "front_knee_angle",
			Band: MetricBand{
				Elite:      Range{Min: 150, Max: 170},
				Good:       Range{Min: 140, Max: 175},
				Acceptable: Range{Min: 130, Max: 180},
			},
		},
		{
			ID:          MetricHeadMovement,
			Pillar:      PillarAnchor,
			Label:       "Head movement",
			Description: "Total head displacement from stance to contact, in inches.",
			Measurement: "head_movement_in",
			Band: MetricBand{
				Elite:      Range{Min: 0, Max: 2},
				Good:       Range{Min: 0, Max: 3.5},
				Acceptable: Range{Min: 0, Max: 5},
			},
		},

		// Stability
		{
			ID:          MetricPelvisTorsoSeparation,
			Pillar:      PillarStability,
			Label:       "Hip-shoulder separation",
			Description: "Peak angle between pelvis and torso rotation, in degrees.",
			Measurement: "pelvis_torso_separation",
			Band: MetricBand{
				Elite:      Range{Min: 40, Max: 55},
				Good:       Range{Min: 30, Max: 60},
				Acceptable: Range{Min: 20, Max: 65},
			},
		},
		{
			ID:          MetricTrunkTilt,
			Pillar:      PillarStability,
			Label:       "Trunk tilt",
			Description: "Lateral trunk tilt at contact, in degrees.",
			Measurement: "trunk_tilt",
			Band: MetricBand{
				Elite:      Range{Min: 25, Max: 35},
				Good:       Range{Min: 20, Max: 40},
				Acceptable: Range{Min: 15, Max: 45},
			},
		},
		{
			ID:          MetricKineticSequence,
			Pillar:      PillarStability,
			Label:       "Kinetic sequence",
			Description: "Whether hips, chest, arms and hands peak in order and hand off cleanly.",
		},

		// Whip
		{
			ID:          MetricBatLagAngle,
			Pillar:      PillarWhip,
			Label:       "Bat lag angle",
			Description: "Angle between lead forearm and bat at the start of the downswing, in degrees.",
			Measurement: "bat_lag_angle",
			Band: MetricBand{
				Elite:      Range{Min: 85, Max: 100},
				Good:       Range{Min: 75, Max: 105},
				Acceptable: Range{Min: 65, Max: 110},
			},
		},
		{
			ID:          MetricHandSpeed,
			Pillar:      PillarWhip,
			Label:       "Hand speed",
			Description: "Peak hand speed, in mph.",
			Measurement: "hand_speed_mph",
			Band: MetricBand{
				Elite:      Range{Min: 22, Max: 30},
				Good:       Range{Min: 19, Max: 32},
				Acceptable: Range{Min: 16, Max: 35},
			},
		},
		{
			ID:          MetricAttackAngle,
			Pillar:      PillarWhip,
			Label:       "Attack angle",
			Description: "Vertical bat path angle at contact, in degrees.",
			Measurement: "attack_angle",
			Band: MetricBand{
				Elite:      Range{Min: 8, Max: 14},
				Good:       Range{Min: 5, Max: 18},
				Acceptable: Range{Min: 2, Max: 22},
			},
		},
		{
			ID:          MetricTimeToContact,
			Pillar:      PillarWhip,
			Label:       "Time to contact",
			Description: "Time from first bat movement to contact, in milliseconds.",
			Measurement: "time_to_contact_ms",
			Band: MetricBand{
				Elite:      Range{Min: 120, Max: 150},
				Good:       Range{Min: 110, Max: 165},
				Acceptable: Range{Min: 100, Max: 180},
			},
		},
	}
}
