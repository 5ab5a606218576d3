package prescription

import "github.com/swinglab/swinglab/pkg/scoring"

// ChecklistCode links a sub-metric to the drills that target it.
type ChecklistCode string

var checklist = map[scoring.MetricID]ChecklistCode{
	scoring.MetricCOMForwardMovement:    "1.1",
	scoring.MetricStrideLength:          "1.2",
	scoring.MetricFrontKneeAngle:        "1.3",
	scoring.MetricHeadMovement:          "1.4",
	scoring.MetricPelvisTorsoSeparation: "2.1",
	scoring.MetricTrunkTilt:             "2.2",
	scoring.MetricKineticSequence:       "2.3",
	scoring.MetricBatLagAngle:           "3.1",
	scoring.MetricHandSpeed:             "3.2",
	scoring.MetricAttackAngle:           "3.3",
	scoring.MetricTimeToContact:         "3.4",
}

// CodeFor returns the checklist code of a sub-metric.
func CodeFor(id scoring.MetricID) (ChecklistCode, bool) {
	code, ok := checklist[id]
	return code, ok
}
