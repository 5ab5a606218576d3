package scoring

import (
	"math"

	"github.com/swinglab/swinglab/pkg/kinematics"
)

const sequencePreamble = "The ideal swing fires from the ground up: hips go first, then chest, then arms, then hands."

// SequenceScorer grades the kinetic chain of one swing.
type SequenceScorer struct {
	policy Policy
}

// NewSequenceScorer creates a SequenceScorer with the given policy.
func NewSequenceScorer(p Policy) *SequenceScorer {
	return &SequenceScorer{policy: p}
}

type segmentPeak struct {
	index    int
	velocity float64
	time     float64
	decel    float64
}

// Score analyzes four equal-length curves. The curves must already be
// normalized; see kinematics.Record.Normalize.
func (s *SequenceScorer) Score(c kinematics.Curves) KineticSequenceScore {
	n := c.Len()
	timeAt := func(i int) float64 {
		if n <= 1 {
			return 0
		}
		return float64(i) / float64(n-1)
	}

	peaks := make(map[kinematics.Segment]segmentPeak, len(kinematics.Segments))
	result := KineticSequenceScore{}
	for _, seg := range kinematics.Segments {
		curve := c.Get(seg)
		idx, vel := FindPeak(curve)
		decelIdx := findDecelStart(curve, idx, s.policy.DecelDropRatio, s.policy.DecelFallbackSamples)
		sp := segmentPeak{index: idx, velocity: vel, time: timeAt(idx), decel: timeAt(decelIdx)}
		peaks[seg] = sp

		grade := s.policy.gradeSegment(sp.time, sp.decel, s.policy.Windows[seg])
		result.Peaks = append(result.Peaks, SequencePeak{
			Segment:        string(seg),
			PeakTime:       sp.time,
			PeakVelocity:   math.Max(vel, 0),
			DecelStartTime: sp.decel,
			Grade:          grade,
			Message:        CoachingMessage(seg, grade),
		})
	}

	pelvis := peaks[kinematics.SegmentPelvis]
	torso := peaks[kinematics.SegmentTorso]
	leadArm := peaks[kinematics.SegmentLeadArm]
	hands := peaks[kinematics.SegmentHands]

	result.PeakOrder = scorePeakOrder(pelvis.time, torso.time, leadArm.time, hands.time)
	result.PeakSpacing = scorePeakSpacing(pelvis.time, torso.time, leadArm.time, hands.time)
	result.AccelDecel = scoreAccelDecel(pelvis, torso, leadArm, hands)
	result.EnergyTransfer = s.scoreEnergyTransfer(c, peaks, timeAt)

	w := s.policy.Sequence
	overall := result.PeakOrder.Score*w.Order +
		result.PeakSpacing.Score*w.Spacing +
		result.AccelDecel.Score*w.AccelDecel +
		result.EnergyTransfer.Score*w.Energy
	result.Overall = clamp(math.Round(overall))
	result.Severity = Classify(result.Overall)
	result.Summary = sequenceSummary(result.Overall)

	result.Chart = make([]ChartPoint, n)
	for i := 0; i < n; i++ {
		result.Chart[i] = ChartPoint{
			Time:    timeAt(i),
			Pelvis:  c.Pelvis[i],
			Torso:   c.Torso[i],
			LeadArm: c.LeadArm[i],
			Hands:   c.Hands[i],
		}
	}

	return result
}

func scorePeakOrder(pelvis, torso, leadArm, hands float64) PeakOrderScore {
	if pelvis < torso && torso < leadArm && leadArm < hands {
		return PeakOrderScore{
			SequenceSubScore: subScore(95, "Perfect sequence: hips, chest, arms, then hands."),
			InCorrectOrder:   true,
		}
	}

	correct := 0
	for _, ok := range []bool{pelvis < torso, torso < leadArm, leadArm < hands} {
		if ok {
			correct++
		}
	}

	var msg string
	switch {
	case hands < leadArm:
		msg = "Hands are peaking before the lead arm; you're casting the bat."
	case leadArm < torso:
		msg = "Arms are peaking before the chest; the upper body is doing the work alone."
	case torso < pelvis:
		msg = "Chest is peaking before the hips; the swing is starting from the top."
	default:
		msg = "Peaks are out of order; the segments are firing together instead of in sequence."
	}
	return PeakOrderScore{SequenceSubScore: subScore(float64(25*correct), msg)}
}

func scorePeakSpacing(pelvis, torso, leadArm, hands float64) PeakSpacingScore {
	avg := ((torso - pelvis) + (leadArm - torso) + (hands - leadArm)) / 3

	var score float64
	var msg string
	switch {
	case avg >= 0.08 && avg <= 0.15:
		score, msg = 95, "Ideal spacing between peaks; each segment has time to hand off."
	case avg >= 0.05 && avg <= 0.20:
		score, msg = 80, "Good spacing between peaks."
	case avg >= 0.03 && avg <= 0.25:
		score, msg = 65, "Spacing between peaks is workable but uneven."
	case avg < 0.03:
		score, msg = 30, "Peaks are bunched together; the body is rotating as one block."
	default:
		score, msg = 40, "Peaks are too spread out; energy leaks between segments."
	}
	return PeakSpacingScore{SequenceSubScore: subScore(score, msg), AverageGap: avg}
}

func scoreAccelDecel(pelvis, torso, leadArm, hands segmentPeak) SequenceSubScore {
	var score float64
	checks := []bool{
		pelvis.decel < torso.time,
		torso.decel < leadArm.time,
		leadArm.decel < hands.time,
		hands.decel > hands.time,
	}
	for _, ok := range checks {
		if ok {
			score += 25
		}
	}

	msg := "Each segment brakes before the next one peaks."
	switch {
	case score >= 75 && score < 100:
		msg = "Most segments brake in time; one hand-off is late."
	case score >= 50 && score < 75:
		msg = "Several segments keep accelerating when they should be braking."
	case score < 50:
		msg = "Segments are not braking; without deceleration there is no whip."
	}
	return subScore(math.Min(score, 100), msg)
}

func (s *SequenceScorer) scoreEnergyTransfer(c kinematics.Curves, peaks map[kinematics.Segment]segmentPeak, timeAt func(int) float64) EnergyTransferScore {
	n := c.Len()
	overlapSamples := 0
	overlapTotal := 0
	for i := 0; i < n; i++ {
		t := timeAt(i)
		count := 0
		for _, seg := range kinematics.Segments {
			sp := peaks[seg]
			v := c.Get(seg)[i]
			if math.Abs(t-sp.time) <= s.policy.NearPeakTime && v >= sp.velocity*s.policy.NearPeakRatio {
				count++
			}
		}
		if count > 1 {
			overlapTotal += count - 1
			overlapSamples++
		}
	}

	var pct float64
	if n > 0 {
		pct = 100 * float64(overlapSamples) / float64(n)
	}

	var score float64
	var msg string
	switch {
	case pct > 30:
		score, msg = 40, "Heavy overlap between segments; energy is leaking instead of transferring."
	case pct > 20:
		score, msg = 60, "Noticeable overlap between segment peaks."
	case pct > 10:
		score, msg = 80, "Minor overlap between segment peaks."
	default:
		score, msg = 95, "Clean energy transfer from one segment to the next."
	}
	return EnergyTransferScore{SequenceSubScore: subScore(score, msg), OverlapPercent: pct}
}

func subScore(score float64, msg string) SequenceSubScore {
	score = clamp(score)
	return SequenceSubScore{Score: score, Severity: Classify(score), Message: msg}
}

func sequenceSummary(overall float64) string {
	switch {
	case overall >= 80:
		return sequencePreamble + " Your chain is firing in order and handing off cleanly; keep it repeatable."
	case overall >= 60:
		return sequencePreamble + " The pieces are there, but the hand-offs are leaking speed; focus on braking each segment before the next one fires."
	default:
		return sequencePreamble + " Right now the segments are firing together or out of order; rebuild the sequence starting from the hips."
	}
}
