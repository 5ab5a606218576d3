package prescription_test

import (
	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
)

func sampleCatalog() []prescription.Drill {
	return []prescription.Drill{
		{ID: "wall-stride", Title: "Wall stride", Category: prescription.CategoryAnchor, PriorityLevel: prescription.PriorityHigh, Targets: []string{"1.1", "1.2"}},
		{ID: "step-back", Title: "Step-back load", Category: prescription.CategoryAnchor, PriorityLevel: prescription.PriorityVeryHigh, Targets: []string{"1.1"}},
		{ID: "head-still", Title: "Head still tee", Category: prescription.CategoryAnchor, PriorityLevel: prescription.PriorityModerate, Targets: []string{"1.4"}},
		{ID: "hip-lead", Title: "Hip lead walk-through", Category: prescription.CategoryStability, PriorityLevel: prescription.PriorityHigh, Targets: []string{"2.1", "2.3"}},
		{ID: "tilt-hold", Title: "Tilt hold", Category: prescription.CategoryStability, PriorityLevel: prescription.PriorityLow, Targets: []string{"2.2"}},
		{ID: "lag-pump", Title: "Lag pump", Category: prescription.CategoryWhip, PriorityLevel: prescription.PriorityVeryHigh, Targets: []string{"3.1"}},
		{ID: "fast-hands", Title: "Overload/underload bat", Category: prescription.CategoryWhip, PriorityLevel: prescription.PriorityModerate, Targets: []string{"3.2", "3.4"}},
		{ID: "connection-ball", Title: "Connection ball", Category: prescription.CategoryMulti, PriorityLevel: prescription.PriorityHigh, Targets: []string{"2.3", "3.1"}},
		{ID: "full-chain", Title: "Full chain flow", Category: prescription.CategoryMulti, PriorityLevel: prescription.PriorityModerate, Targets: []string{"2.3"}},
	}
}

func metric(id scoring.MetricID, label string, score float64) scoring.SubMetricScore {
	return scoring.SubMetricScore{ID: id, Label: label, Score: score, Severity: scoring.Classify(score)}
}

func category(metrics ...scoring.SubMetricScore) scoring.CategoryScore {
	var sum float64
	for _, m := range metrics {
		sum += m.Score
	}
	score := 50.0
	if len(metrics) > 0 {
		score = sum / float64(len(metrics))
	}
	return scoring.CategoryScore{Score: score, Metrics: metrics}
}

// weakSwing has critical anchor and whip metrics, moderate stability.
func weakSwing() scoring.SwingScore {
	s := scoring.SwingScore{
		Anchor: category(
			metric(scoring.MetricCOMForwardMovement, "Center of mass forward movement", 20),
			metric(scoring.MetricStrideLength, "Stride length", 65),
			metric(scoring.MetricHeadMovement, "Head movement", 45),
		),
		Stability: category(
			metric(scoring.MetricPelvisTorsoSeparation, "Hip-shoulder separation", 55),
			metric(scoring.MetricTrunkTilt, "Trunk tilt", 80),
		),
		Whip: category(
			metric(scoring.MetricBatLagAngle, "Bat lag angle", 30),
			metric(scoring.MetricHandSpeed, "Hand speed", 50),
		),
	}
	s.Overall = scoring.CombinePillars(s.Anchor.Score, s.Stability.Score, s.Whip.Score, scoring.Defaults().Pillars)
	return s
}

func solidSwing() scoring.SwingScore {
	return scoring.SwingScore{
		Anchor:    category(metric(scoring.MetricCOMForwardMovement, "COM", 95), metric(scoring.MetricStrideLength, "Stride", 80)),
		Stability: category(metric(scoring.MetricKineticSequence, "Kinetic sequence", 90)),
		Whip:      category(metric(scoring.MetricBatLagAngle, "Bat lag", 85)),
		Overall:   88,
	}
}
