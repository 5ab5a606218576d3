package scoring

// Severity band lower bounds. Each band includes its lower bound.
const (
	greenFloor  = 80
	yellowFloor = 60
	orangeFloor = 40
)

// Classify maps a score to its four-color severity band.
func Classify(score float64) Severity {
	switch {
	case score >= greenFloor:
		return SeverityGreen
	case score >= yellowFloor:
		return SeverityYellow
	case score >= orangeFloor:
		return SeverityOrange
	default:
		return SeverityRed
	}
}

// TriageOf maps a score to critical (<40), moderate ([40,60)) or adequate (>=60).
func TriageOf(score float64) Triage {
	switch {
	case score < orangeFloor:
		return TriageCritical
	case score < yellowFloor:
		return TriageModerate
	default:
		return TriageAdequate
	}
}

// clamp restricts a score to [0,100].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
