package scoring

// Direction classifies a change between two score snapshots.
type Direction string

const (
	DirectionImprovement Direction = "improvement"
	DirectionDecline     Direction = "decline"
	DirectionFlat        Direction = "flat"
)

// MetricDelta is the signed change of one score between two snapshots.
type MetricDelta struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Before    float64   `json:"before"`
	After     float64   `json:"after"`
	Delta     float64   `json:"delta"`
	Direction Direction `json:"direction"`
}

// Compare computes the deltas from before to after: overall first, then each
// pillar followed by its sub-metrics. Sub-metrics missing from either
// snapshot are skipped.
func Compare(before, after SwingScore) []MetricDelta {
	out := []MetricDelta{newDelta("overall", "Overall", before.Overall, after.Overall)}

	for _, p := range Pillars {
		b, a := before.Category(p), after.Category(p)
		out = append(out, newDelta(string(p), pillarLabel(p), b.Score, a.Score))

		prev := make(map[MetricID]SubMetricScore, len(b.Metrics))
		for _, m := range b.Metrics {
			prev[m.ID] = m
		}
		for _, m := range a.Metrics {
			pm, ok := prev[m.ID]
			if !ok {
				continue
			}
			out = append(out, newDelta(string(m.ID), m.Label, pm.Score, m.Score))
		}
	}
	return out
}

func newDelta(key, label string, before, after float64) MetricDelta {
	d := after - before
	dir := DirectionFlat
	switch {
	case d > 0:
		dir = DirectionImprovement
	case d < 0:
		dir = DirectionDecline
	}
	return MetricDelta{Key: key, Label: label, Before: before, After: after, Delta: d, Direction: dir}
}

func pillarLabel(p Pillar) string {
	switch p {
	case PillarAnchor:
		return "Anchor"
	case PillarStability:
		return "Stability"
	case PillarWhip:
		return "Whip"
	default:
		return string(p)
	}
}
