package scoring

import (
	"math"

	"github.com/swinglab/swinglab/pkg/kinematics"
)

// GradeSegment grades one segment's peak timing and deceleration against its
// expected window using the default policy.
func GradeSegment(peakTime, decelTime float64, expected Window) Grade {
	return Defaults().gradeSegment(peakTime, decelTime, expected)
}

func (p Policy) gradeSegment(peakTime, decelTime float64, expected Window) Grade {
	scaledGap := (decelTime - peakTime) * p.DecelGapScale
	inRange := expected.Contains(peakTime)
	goodDecel := scaledGap > p.DecelGapMin && scaledGap < p.DecelGapMax

	switch {
	case inRange && goodDecel:
		return GradeA
	case inRange || goodDecel:
		return GradeB
	}

	distance := math.Abs(peakTime - expected.Midpoint())
	switch {
	case distance < p.GradeCDistance:
		return GradeC
	case distance < p.GradeDDistance:
		return GradeD
	default:
		return GradeF
	}
}

type segmentMessages struct {
	good string
	poor string
}

var coachingMessages = map[kinematics.Segment]segmentMessages{
	kinematics.SegmentPelvis: {
		good: "Hips fire on time and brake cleanly to pass energy up the chain.",
		poor: "Hips are peaking at the wrong moment or not braking; start the swing from the ground up.",
	},
	kinematics.SegmentTorso: {
		good: "Chest rotation follows the hips and stops hard to whip the arms.",
		poor: "Chest is rotating with the hips or drifting through; let the hips lead, then snap the chest.",
	},
	kinematics.SegmentLeadArm: {
		good: "Lead arm accelerates after the chest and hands energy to the bat.",
		poor: "Lead arm is early or slow to decelerate; keep it connected until the chest has turned.",
	},
	kinematics.SegmentHands: {
		good: "Hands release last and fast, right through contact.",
		poor: "Hands are casting early or arriving late; let the body pull the hands into the zone.",
	},
}

// CoachingMessage returns the canned message for a segment grade.
func CoachingMessage(seg kinematics.Segment, g Grade) string {
	m := coachingMessages[seg]
	if g == GradeA || g == GradeB {
		return m.good
	}
	return m.poor
}
