package scoring

// Band scores and the penalty applied per unit outside the acceptable band.
const (
	EliteScore      = 95
	GoodScore       = 80
	AcceptableScore = 65
	MissingScore    = 50
	PenaltyPerUnit  = 2
)

// Range is a closed interval of a physical measurement.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// MetricBand holds the research-derived target ranges for one measurement.
type MetricBand struct {
	Elite      Range `yaml:"elite" json:"elite"`
	Good       Range `yaml:"good" json:"good"`
	Acceptable Range `yaml:"acceptable" json:"acceptable"`
}

// MapToScore maps a measurement to a 0-100 score against its bands.
// A nil value means the measurement is missing and scores MissingScore.
// Outside the acceptable band the score falls off linearly from
// AcceptableScore by PenaltyPerUnit per unit of distance, floored at 0.
func MapToScore(value *float64, band MetricBand) float64 {
	if value == nil {
		return MissingScore
	}
	v := *value

	switch {
	case band.Elite.Contains(v):
		return EliteScore
	case band.Good.Contains(v):
		return GoodScore
	case band.Acceptable.Contains(v):
		return AcceptableScore
	}

	var distance float64
	if v < band.Acceptable.Min {
		distance = band.Acceptable.Min - v
	} else {
		distance = v - band.Acceptable.Max
	}
	return clamp(AcceptableScore - distance*PenaltyPerUnit)
}
