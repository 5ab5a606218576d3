package prescription

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/swinglab/swinglab/pkg/scoring"
)

// Selection limits and sort weights.
const (
	MaxRecommendations = 5

	maxCriticalMetrics = 3
	maxModerateMetrics = 2
	maxPillarDrills    = 3

	criticalWeight    = 10
	integrationWeight = 7
	moderateWeight    = 5

	weakPillarScore = 60
	minWeakPillars  = 2
)

// PrescriptionContext is the severity triage of a swing's sub-metrics.
type PrescriptionContext struct {
	Critical      []scoring.SubMetricScore `json:"critical"`
	Moderate      []scoring.SubMetricScore `json:"moderate"`
	Adequate      []scoring.SubMetricScore `json:"adequate"`
	WeakestPillar scoring.Pillar           `json:"weakest_pillar"`
}

// Recommendation is one ranked drill with its justification.
type Recommendation struct {
	Drill           Drill              `json:"drill"`
	Reason          string             `json:"reason"`
	Priority        int                `json:"priority"`
	TargetedMetrics []scoring.MetricID `json:"targeted_metrics"`
}

// Prescription bundles the triage with the selected drills.
type Prescription struct {
	Context         PrescriptionContext `json:"context"`
	Recommendations []Recommendation    `json:"recommendations"`
}

// CategorizeSeverity buckets every sub-metric by triage level, keeping
// encounter order, and finds the pillar with the lowest category score.
func CategorizeSeverity(s scoring.SwingScore) PrescriptionContext {
	ctx := PrescriptionContext{
		Critical: []scoring.SubMetricScore{},
		Moderate: []scoring.SubMetricScore{},
		Adequate: []scoring.SubMetricScore{},
	}
	for _, m := range s.AllMetrics() {
		switch scoring.TriageOf(m.Score) {
		case scoring.TriageCritical:
			ctx.Critical = append(ctx.Critical, m)
		case scoring.TriageModerate:
			ctx.Moderate = append(ctx.Moderate, m)
		default:
			ctx.Adequate = append(ctx.Adequate, m)
		}
	}

	ctx.WeakestPillar = scoring.Pillars[0]
	lowest := s.Category(ctx.WeakestPillar).Score
	for _, p := range scoring.Pillars[1:] {
		if score := s.Category(p).Score; score < lowest {
			ctx.WeakestPillar, lowest = p, score
		}
	}
	return ctx
}

// stage proposes recommendations given those already chosen. It must not
// modify chosen.
type stage func(s scoring.SwingScore, ctx PrescriptionContext, catalog []Drill, chosen []Recommendation) []Recommendation

// SelectDrills returns at most MaxRecommendations drills, critical metrics
// first, then moderate ones, then a single integration drill when two or
// more pillars are weak. The result never repeats a drill and is stable
// for identical input.
func SelectDrills(s scoring.SwingScore, catalog []Drill) []Recommendation {
	ctx := CategorizeSeverity(s)

	chosen := []Recommendation{}
	for _, st := range []stage{criticalStage, moderateStage, integrationStage} {
		chosen = append(slices.Clip(chosen), st(s, ctx, catalog, chosen)...)
	}

	sort.SliceStable(chosen, func(i, j int) bool {
		return chosen[i].Priority > chosen[j].Priority
	})
	if len(chosen) > MaxRecommendations {
		chosen = chosen[:MaxRecommendations]
	}
	return chosen
}

func criticalStage(_ scoring.SwingScore, ctx PrescriptionContext, catalog []Drill, chosen []Recommendation) []Recommendation {
	metrics := ctx.Critical[:min(maxCriticalMetrics, len(ctx.Critical))]
	urgent := func(d Drill) bool {
		return d.PriorityLevel == PriorityVeryHigh || d.PriorityLevel == PriorityHigh
	}
	return perMetric(metrics, catalog, chosen, urgent, criticalWeight, "Critical: %s scoring %s/100")
}

func moderateStage(_ scoring.SwingScore, ctx PrescriptionContext, catalog []Drill, chosen []Recommendation) []Recommendation {
	if len(chosen) >= maxCriticalMetrics {
		return nil
	}
	metrics := ctx.Moderate[:min(maxModerateMetrics, len(ctx.Moderate))]
	return perMetric(metrics, catalog, chosen, nil, moderateWeight, "Needs work: %s at %s/100")
}

func integrationStage(s scoring.SwingScore, _ PrescriptionContext, catalog []Drill, chosen []Recommendation) []Recommendation {
	if len(chosen) >= MaxRecommendations {
		return nil
	}

	var targeted []scoring.MetricID
	weak := 0
	for _, p := range scoring.Pillars {
		cat := s.Category(p)
		if cat.Score >= weakPillarScore {
			continue
		}
		weak++
		for _, m := range cat.Metrics {
			if m.Score < weakPillarScore {
				targeted = append(targeted, m.ID)
			}
		}
	}
	if weak < minWeakPillars {
		return nil
	}

	used := usedDrills(chosen)
	for _, d := range catalog {
		if d.Category == CategoryMulti && !used[d.ID] {
			return []Recommendation{{
				Drill:           d,
				Reason:          "Integration drill for multiple weak areas",
				Priority:        integrationWeight,
				TargetedMetrics: targeted,
			}}
		}
	}
	return nil
}

// perMetric picks the best drill for each metric in order. A metric with no
// checklist code or no matching drill is skipped.
func perMetric(metrics []scoring.SubMetricScore, catalog []Drill, chosen []Recommendation, allow func(Drill) bool, weight int, reasonFmt string) []Recommendation {
	used := usedDrills(chosen)
	var out []Recommendation
	for _, m := range metrics {
		code, ok := CodeFor(m.ID)
		if !ok {
			continue
		}
		d, ok := bestDrill(catalog, code, used, allow)
		if !ok {
			continue
		}
		used[d.ID] = true
		out = append(out, Recommendation{
			Drill:           d,
			Reason:          fmt.Sprintf(reasonFmt, m.Label, formatScore(m.Score)),
			Priority:        weight,
			TargetedMetrics: []scoring.MetricID{m.ID},
		})
	}
	return out
}

// bestDrill returns the most urgent unused drill targeting code. Ties keep
// catalog order.
func bestDrill(catalog []Drill, code ChecklistCode, used map[string]bool, allow func(Drill) bool) (Drill, bool) {
	var best Drill
	found := false
	for _, d := range catalog {
		if used[d.ID] || !d.targets(code) {
			continue
		}
		if allow != nil && !allow(d) {
			continue
		}
		if !found || d.PriorityLevel.rank() < best.PriorityLevel.rank() {
			best, found = d, true
		}
	}
	return best, found
}

func usedDrills(recs []Recommendation) map[string]bool {
	used := make(map[string]bool, len(recs))
	for _, r := range recs {
		used[r.Drill.ID] = true
	}
	return used
}

func formatScore(score float64) string {
	return strconv.FormatFloat(math.Round(score*10)/10, 'f', -1, 64)
}

// DrillsForPillar recommends up to three drills of one pillar for the
// metrics scoring below 60. It never falls back to other pillars.
func DrillsForPillar(pillar scoring.Pillar, metrics []scoring.SubMetricScore, catalog []Drill) []Recommendation {
	inPillar := func(d Drill) bool {
		return d.Category == Category(pillar)
	}

	out := []Recommendation{}
	for _, m := range metrics {
		if len(out) >= maxPillarDrills {
			break
		}
		if m.Score >= weakPillarScore {
			continue
		}
		weight, reasonFmt := moderateWeight, "Needs work: %s at %s/100"
		if scoring.TriageOf(m.Score) == scoring.TriageCritical {
			weight, reasonFmt = criticalWeight, "Critical: %s scoring %s/100"
		}
		out = append(out, perMetric([]scoring.SubMetricScore{m}, catalog, out, inPillar, weight, reasonFmt)...)
	}
	return out
}

// Engine prescribes drills from a validated catalog. It is safe for
// concurrent use; the catalog is treated as read-only.
type Engine struct {
	catalog []Drill
}

// NewEngine validates the catalog and returns an Engine over a private copy.
func NewEngine(catalog []Drill) (*Engine, error) {
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return &Engine{catalog: slices.Clone(catalog)}, nil
}

// Catalog returns a copy of the engine's catalog.
func (e *Engine) Catalog() []Drill {
	return slices.Clone(e.catalog)
}

// Prescribe triages the swing and selects drills.
func (e *Engine) Prescribe(s scoring.SwingScore) Prescription {
	return Prescription{
		Context:         CategorizeSeverity(s),
		Recommendations: SelectDrills(s, e.catalog),
	}
}

// ForPillar recommends drills for one pillar of the swing.
func (e *Engine) ForPillar(s scoring.SwingScore, p scoring.Pillar) []Recommendation {
	return DrillsForPillar(p, s.Category(p).Metrics, e.catalog)
}
