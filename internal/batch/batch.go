// Package batch scores many independent swings concurrently.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/kinematics"
)

// Analyzer scores one capture. *analysis.Analyzer satisfies it.
type Analyzer interface {
	Analyze(c *kinematics.Capture) (*analysis.Result, error)
}

// Runner fans captures out to a bounded number of goroutines.
type Runner struct {
	analyzer Analyzer
	workers  int
}

// NewRunner creates a Runner. workers <= 0 uses GOMAXPROCS.
func NewRunner(a Analyzer, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{analyzer: a, workers: workers}
}

// Run analyzes every capture and returns the results in input order. The
// first failure cancels the remaining work and is returned.
func (r *Runner) Run(ctx context.Context, captures []*kinematics.Capture) ([]*analysis.Result, error) {
	start := time.Now()
	results := make([]*analysis.Result, len(captures))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, c := range captures {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := r.analyzer.Analyze(c)
			if err != nil {
				return fmt.Errorf("swing %d (%s): %w", i, captureName(c), err)
			}
			// Each goroutine owns its own index.
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"swings":   len(captures),
		"workers":  r.workers,
		"duration": time.Since(start),
	}).Debug("batch scored")
	return results, nil
}

func captureName(c *kinematics.Capture) string {
	if c == nil || c.ID == "" {
		return "unnamed"
	}
	return c.ID
}

// LoadDir reads every *.json capture in dir, sorted by file name. Captures
// without an ID take the file name without extension.
func LoadDir(dir string) ([]*kinematics.Capture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading capture dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	captures := make([]*kinematics.Capture, 0, len(names))
	for _, name := range names {
		c, err := kinematics.LoadCapture(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if c.ID == "" {
			c.ID = strings.TrimSuffix(name, filepath.Ext(name))
		}
		captures = append(captures, c)
	}
	return captures, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Count       int                `json:"count"`
	MeanOverall float64            `json:"mean_overall"`
	Best        string             `json:"best,omitempty"`
	Worst       string             `json:"worst,omitempty"`
	BySeverity  map[string]int     `json:"by_severity"`
	DrillCounts map[string]int     `json:"drill_counts"`
	Results     []*analysis.Result `json:"results"`
}

// Summarize computes aggregate statistics over batch results.
func Summarize(results []*analysis.Result) Summary {
	s := Summary{
		Count:       len(results),
		BySeverity:  make(map[string]int),
		DrillCounts: make(map[string]int),
		Results:     results,
	}
	if len(results) == 0 {
		return s
	}

	var sum float64
	best, worst := results[0], results[0]
	for _, r := range results {
		overall := r.Report.Swing.Overall
		sum += overall
		if overall > best.Report.Swing.Overall {
			best = r
		}
		if overall < worst.Report.Swing.Overall {
			worst = r
		}
		s.BySeverity[string(r.Report.Severity)]++
		for _, rec := range r.Prescription.Recommendations {
			s.DrillCounts[rec.Drill.ID]++
		}
	}
	s.MeanOverall = sum / float64(len(results))
	s.Best = best.ID
	s.Worst = worst.ID
	return s
}
