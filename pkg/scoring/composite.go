package scoring

import "math"

// Measurements is a per-swing set of scalar biomechanical values keyed by
// measurement name. A missing key means the value was not measured.
type Measurements map[string]float64

// Lookup returns the measurement or nil when it is missing.
func (m Measurements) Lookup(key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}

// CompositeScorer scores the sub-metrics of every pillar and combines the
// pillar scores into an overall swing score.
type CompositeScorer struct {
	defs    []MetricDef
	weights PillarWeights
}

// NewCompositeScorer creates a CompositeScorer over the given metric
// definitions.
func NewCompositeScorer(weights PillarWeights, defs ...MetricDef) *CompositeScorer {
	if len(defs) == 0 {
		defs = DefaultMetrics()
	}
	return &CompositeScorer{defs: defs, weights: weights}
}

// Score computes the SwingScore. sequence is the kinetic sequence overall
// score, or nil when no curves were captured.
func (c *CompositeScorer) Score(m Measurements, sequence *float64) SwingScore {
	byPillar := make(map[Pillar][]SubMetricScore, len(Pillars))
	for _, d := range c.defs {
		var score float64
		switch {
		case d.Banded():
			score = MapToScore(m.Lookup(d.Measurement), d.Band)
		case sequence != nil:
			score = clamp(*sequence)
		default:
			score = MissingScore
		}
		byPillar[d.Pillar] = append(byPillar[d.Pillar], SubMetricScore{
			ID:          d.ID,
			Label:       d.Label,
			Description: d.Description,
			Score:       score,
			Severity:    Classify(score),
		})
	}

	out := SwingScore{
		Anchor:    category(byPillar[PillarAnchor]),
		Stability: category(byPillar[PillarStability]),
		Whip:      category(byPillar[PillarWhip]),
	}
	out.Overall = CombinePillars(out.Anchor.Score, out.Stability.Score, out.Whip.Score, c.weights)
	return out
}

func category(metrics []SubMetricScore) CategoryScore {
	if len(metrics) == 0 {
		return CategoryScore{Score: MissingScore}
	}
	var sum float64
	for _, m := range metrics {
		sum += m.Score
	}
	return CategoryScore{
		Score:   clamp(math.Round(sum / float64(len(metrics)))),
		Metrics: metrics,
	}
}

// CombinePillars returns the weight-normalized overall score. Non-positive
// weights are ignored; if no weight is positive the pillars count equally.
func CombinePillars(anchor, stability, whip float64, w PillarWeights) float64 {
	scores := []float64{anchor, stability, whip}
	weights := []float64{w.Anchor, w.Stability, w.Whip}

	var total, weightSum float64
	for i, s := range scores {
		if weights[i] <= 0 {
			continue
		}
		total += clamp(s) * weights[i]
		weightSum += weights[i]
	}
	if weightSum == 0 {
		return clamp(math.Round((clamp(anchor) + clamp(stability) + clamp(whip)) / 3))
	}
	return clamp(math.Round(total / weightSum))
}
