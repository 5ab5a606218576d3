package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swinglab/swinglab/pkg/scoring"
)

func TestCompare(t *testing.T) {
	before := scoring.SwingScore{
		Overall: 60,
		Anchor: scoring.CategoryScore{Score: 50, Metrics: []scoring.SubMetricScore{
			{ID: scoring.MetricHeadMovement, Label: "Head movement", Score: 45},
		}},
		Stability: scoring.CategoryScore{Score: 70},
		Whip: scoring.CategoryScore{Score: 65, Metrics: []scoring.SubMetricScore{
			{ID: scoring.MetricHandSpeed, Label: "Hand speed", Score: 80},
		}},
	}
	after := scoring.SwingScore{
		Overall: 66,
		Anchor: scoring.CategoryScore{Score: 62, Metrics: []scoring.SubMetricScore{
			{ID: scoring.MetricHeadMovement, Label: "Head movement", Score: 80},
		}},
		Stability: scoring.CategoryScore{Score: 70},
		Whip: scoring.CategoryScore{Score: 60, Metrics: []scoring.SubMetricScore{
			{ID: scoring.MetricHandSpeed, Label: "Hand speed", Score: 65},
			{ID: scoring.MetricAttackAngle, Label: "Attack angle", Score: 95},
		}},
	}

	deltas := scoring.Compare(before, after)

	// overall, anchor, head_movement, stability, whip, hand_speed
	require.Len(t, deltas, 6)
	assert.Equal(t, "overall", deltas[0].Key)
	assert.Equal(t, 6.0, deltas[0].Delta)
	assert.Equal(t, scoring.DirectionImprovement, deltas[0].Direction)

	assert.Equal(t, "head_movement", deltas[2].Key)
	assert.Equal(t, 35.0, deltas[2].Delta)

	assert.Equal(t, "stability", deltas[3].Key)
	assert.Equal(t, scoring.DirectionFlat, deltas[3].Direction)

	assert.Equal(t, "hand_speed", deltas[5].Key)
	assert.Equal(t, -15.0, deltas[5].Delta)
	assert.Equal(t, scoring.DirectionDecline, deltas[5].Direction)
}

func TestCompareIdenticalIsFlat(t *testing.T) {
	s := scoring.NewCompositeScorer(scoring.Defaults().Pillars).Score(eliteMeasurements(), nil)
	for _, d := range scoring.Compare(s, s) {
		assert.Equal(t, scoring.DirectionFlat, d.Direction, d.Key)
		assert.Zero(t, d.Delta, d.Key)
	}
}
