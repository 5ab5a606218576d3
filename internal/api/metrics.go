package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/swinglab/swinglab/pkg/analysis"
)

// Metrics holds the Prometheus collectors of the swinglab API.
type Metrics struct {
	registry *prometheus.Registry

	swingsScored    *prometheus.CounterVec
	scoringErrors   prometheus.Counter
	scoringLatency  prometheus.Histogram
	overallScore    prometheus.Histogram
	drillsPrescribe prometheus.Counter
	requests        *prometheus.CounterVec
}

// NewMetrics registers the API collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		swingsScored: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swinglab",
			Name:      "swings_scored_total",
			Help:      "Swings scored, by overall severity band.",
		}, []string{"severity"}),
		scoringErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: "swinglab",
			Name:      "scoring_errors_total",
			Help:      "Swings rejected during scoring.",
		}),
		scoringLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "swinglab",
			Name:      "scoring_duration_seconds",
			Help:      "Time spent analyzing one swing.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		overallScore: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "swinglab",
			Name:      "overall_score",
			Help:      "Distribution of overall swing scores.",
			Buckets:   []float64{20, 40, 60, 80, 100},
		}),
		drillsPrescribe: f.NewCounter(prometheus.CounterOpts{
			Namespace: "swinglab",
			Name:      "drills_prescribed_total",
			Help:      "Drill recommendations returned.",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swinglab",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code class.",
		}, []string{"route", "code"}),
	}
}

// Registry exposes the registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeResult(res *analysis.Result, took time.Duration) {
	m.scoringLatency.Observe(took.Seconds())
	m.swingsScored.WithLabelValues(string(res.Report.Severity)).Inc()
	m.overallScore.Observe(res.Report.Swing.Overall)
	m.drillsPrescribe.Add(float64(len(res.Prescription.Recommendations)))
}

func (m *Metrics) observeError() {
	m.scoringErrors.Inc()
}
