package prescription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
)

func drillIDs(recs []prescription.Recommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.Drill.ID
	}
	return ids
}

func TestCategorizeSeverityPartitions(t *testing.T) {
	s := weakSwing()
	ctx := prescription.CategorizeSeverity(s)

	total := len(s.AllMetrics())
	assert.Equal(t, total, len(ctx.Critical)+len(ctx.Moderate)+len(ctx.Adequate))

	require.Len(t, ctx.Critical, 2)
	assert.Equal(t, scoring.MetricCOMForwardMovement, ctx.Critical[0].ID)
	assert.Equal(t, scoring.MetricBatLagAngle, ctx.Critical[1].ID)

	require.Len(t, ctx.Moderate, 3)
	assert.Equal(t, scoring.MetricHeadMovement, ctx.Moderate[0].ID)
	assert.Equal(t, scoring.MetricPelvisTorsoSeparation, ctx.Moderate[1].ID)
	assert.Equal(t, scoring.MetricHandSpeed, ctx.Moderate[2].ID)

	assert.Equal(t, scoring.PillarWhip, ctx.WeakestPillar)
}

func TestCategorizeSeverityBoundaries(t *testing.T) {
	s := scoring.SwingScore{Anchor: category(
		metric("a", "a", 39.999),
		metric("b", "b", 40),
		metric("c", "c", 59.999),
		metric("d", "d", 60),
	)}
	ctx := prescription.CategorizeSeverity(s)
	assert.Len(t, ctx.Critical, 1)
	assert.Len(t, ctx.Moderate, 2)
	assert.Len(t, ctx.Adequate, 1)
}

func TestCategorizeSeverityWeakestPillarTieKeepsFirst(t *testing.T) {
	s := scoring.SwingScore{
		Anchor:    scoring.CategoryScore{Score: 70},
		Stability: scoring.CategoryScore{Score: 55},
		Whip:      scoring.CategoryScore{Score: 55},
	}
	assert.Equal(t, scoring.PillarStability, prescription.CategorizeSeverity(s).WeakestPillar)

	s.Anchor.Score = 55
	assert.Equal(t, scoring.PillarAnchor, prescription.CategorizeSeverity(s).WeakestPillar)
}

func TestSelectDrillsWeakSwing(t *testing.T) {
	recs := prescription.SelectDrills(weakSwing(), sampleCatalog())

	// Critical: COM -> step-back (very_high beats high), bat lag -> lag-pump.
	// Moderate: head -> head-still, separation -> hip-lead.
	// Integration: anchor (43.3) and whip (40) are weak -> connection-ball.
	assert.Equal(t, []string{"step-back", "lag-pump", "connection-ball", "head-still", "hip-lead"}, drillIDs(recs))

	assert.Equal(t, 10, recs[0].Priority)
	assert.Equal(t, "Critical: Center of mass forward movement scoring 20/100", recs[0].Reason)
	assert.Equal(t, []scoring.MetricID{scoring.MetricCOMForwardMovement}, recs[0].TargetedMetrics)

	assert.Equal(t, 7, recs[2].Priority)
	assert.Equal(t, "Integration drill for multiple weak areas", recs[2].Reason)
	assert.Contains(t, recs[2].TargetedMetrics, scoring.MetricBatLagAngle)

	assert.Equal(t, 5, recs[3].Priority)
	assert.Equal(t, "Needs work: Head movement at 45/100", recs[3].Reason)
}

func TestSelectDrillsCriticalRequiresUrgentPriority(t *testing.T) {
	catalog := []prescription.Drill{
		{ID: "slow-lag", Category: prescription.CategoryWhip, PriorityLevel: prescription.PriorityModerate, Targets: []string{"3.1"}},
	}
	s := scoring.SwingScore{
		Anchor:    category(metric(scoring.MetricStrideLength, "Stride", 90)),
		Stability: category(metric(scoring.MetricTrunkTilt, "Tilt", 90)),
		Whip:      category(metric(scoring.MetricBatLagAngle, "Bat lag angle", 10)),
	}

	assert.Empty(t, prescription.SelectDrills(s, catalog))
}

func TestSelectDrillsSkipsModerateWhenThreeCritical(t *testing.T) {
	catalog := append(sampleCatalog(),
		prescription.Drill{ID: "tilt-fix", Category: prescription.CategoryStability, PriorityLevel: prescription.PriorityHigh, Targets: []string{"2.2"}},
	)
	s := scoring.SwingScore{
		Anchor:    category(metric(scoring.MetricCOMForwardMovement, "COM", 10), metric(scoring.MetricHeadMovement, "Head", 50)),
		Stability: category(metric(scoring.MetricTrunkTilt, "Tilt", 20), metric(scoring.MetricPelvisTorsoSeparation, "Sep", 90)),
		Whip:      category(metric(scoring.MetricBatLagAngle, "Lag", 15), metric(scoring.MetricHandSpeed, "Hands", 90)),
	}

	recs := prescription.SelectDrills(s, catalog)
	ids := drillIDs(recs)
	assert.Equal(t, []string{"step-back", "tilt-fix", "lag-pump", "connection-ball"}, ids)
	assert.NotContains(t, ids, "head-still")
}

func TestSelectDrillsNoDuplicatesAcrossStages(t *testing.T) {
	// Both critical metrics map to drills whose only match is the same drill.
	catalog := []prescription.Drill{
		{ID: "one", Category: prescription.CategoryStability, PriorityLevel: prescription.PriorityHigh, Targets: []string{"2.1", "2.2"}},
	}
	s := scoring.SwingScore{
		Anchor:    category(metric(scoring.MetricStrideLength, "Stride", 90)),
		Stability: category(metric(scoring.MetricPelvisTorsoSeparation, "Sep", 10), metric(scoring.MetricTrunkTilt, "Tilt", 45)),
		Whip:      category(metric(scoring.MetricHandSpeed, "Hands", 90)),
	}

	assert.Equal(t, []string{"one"}, drillIDs(prescription.SelectDrills(s, catalog)))
}

func TestSelectDrillsBoundedAndUnique(t *testing.T) {
	swings := []scoring.SwingScore{weakSwing(), solidSwing(), {}}
	catalogs := [][]prescription.Drill{sampleCatalog(), nil, {}}

	for _, s := range swings {
		for _, c := range catalogs {
			recs := prescription.SelectDrills(s, c)
			assert.LessOrEqual(t, len(recs), prescription.MaxRecommendations)

			seen := map[string]bool{}
			for _, r := range recs {
				assert.False(t, seen[r.Drill.ID], "duplicate drill %s", r.Drill.ID)
				seen[r.Drill.ID] = true
			}
		}
	}
}

func TestSelectDrillsEmptyCatalog(t *testing.T) {
	recs := prescription.SelectDrills(weakSwing(), nil)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestSelectDrillsIdempotent(t *testing.T) {
	s, c := weakSwing(), sampleCatalog()
	assert.Equal(t, prescription.SelectDrills(s, c), prescription.SelectDrills(s, c))
}

func TestSelectDrillsSolidSwing(t *testing.T) {
	assert.Empty(t, prescription.SelectDrills(solidSwing(), sampleCatalog()))
}

func TestSelectDrillsSortedByPriority(t *testing.T) {
	recs := prescription.SelectDrills(weakSwing(), sampleCatalog())
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Priority, recs[i].Priority)
	}
}

func TestDrillsForPillar(t *testing.T) {
	s := weakSwing()
	recs := prescription.DrillsForPillar(scoring.PillarAnchor, s.Anchor.Metrics, sampleCatalog())

	assert.Equal(t, []string{"step-back", "head-still"}, drillIDs(recs))
	for _, r := range recs {
		assert.Equal(t, prescription.CategoryAnchor, r.Drill.Category)
	}
	assert.Equal(t, "Needs work: Head movement at 45/100", recs[1].Reason)
}

func TestDrillsForPillarNoCrossPillarFallback(t *testing.T) {
	catalog := []prescription.Drill{
		{ID: "multi-lag", Category: prescription.CategoryMulti, PriorityLevel: prescription.PriorityVeryHigh, Targets: []string{"3.1"}},
	}
	s := weakSwing()
	assert.Empty(t, prescription.DrillsForPillar(scoring.PillarWhip, s.Whip.Metrics, catalog))
}

func TestDrillsForPillarCapsAtThree(t *testing.T) {
	var catalog []prescription.Drill
	var metrics []scoring.SubMetricScore
	for i, id := range []scoring.MetricID{
		scoring.MetricCOMForwardMovement, scoring.MetricStrideLength,
		scoring.MetricFrontKneeAngle, scoring.MetricHeadMovement,
	} {
		code, ok := prescription.CodeFor(id)
		require.True(t, ok)
		catalog = append(catalog, prescription.Drill{
			ID: string(code), Category: prescription.CategoryAnchor,
			PriorityLevel: prescription.PriorityLow, Targets: []string{string(code)},
		})
		metrics = append(metrics, metric(id, string(id), float64(10*i)))
	}

	assert.Len(t, prescription.DrillsForPillar(scoring.PillarAnchor, metrics, catalog), 3)
}

func TestEnginePrescribe(t *testing.T) {
	e, err := prescription.NewEngine(sampleCatalog())
	require.NoError(t, err)

	p := e.Prescribe(weakSwing())
	assert.Len(t, p.Recommendations, 5)
	assert.Equal(t, scoring.PillarWhip, p.Context.WeakestPillar)

	assert.Len(t, e.ForPillar(weakSwing(), scoring.PillarWhip), 2)
}

func TestEngineCatalogIsCopied(t *testing.T) {
	catalog := sampleCatalog()
	e, err := prescription.NewEngine(catalog)
	require.NoError(t, err)

	catalog[0].ID = "mutated"
	assert.Equal(t, "wall-stride", e.Catalog()[0].ID)
}
