package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/config"
	"github.com/swinglab/swinglab/pkg/kinematics"
	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
)

func loadConfig(path string) *config.Config {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.DefaultConfig()
		}
		path = config.FindConfigFile(wd)
		if path == "" {
			return config.DefaultConfig()
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		logrus.Warnf("failed to load config: %v", err)
		return config.DefaultConfig()
	}
	logrus.Debugf("loaded config from %s", path)
	return cfg
}

// buildAnalyzer wires the scoring engine and the drill catalog.
func buildAnalyzer(opts *rootOpts) (*analysis.Analyzer, error) {
	cfg := loadConfig(opts.configPath)

	var (
		drills []prescription.Drill
		err    error
	)
	if path := firstNonEmpty(opts.catalog, cfg.Prescription.CatalogPath); path != "" {
		drills, err = prescription.LoadCatalog(path)
	} else {
		drills, err = prescription.DefaultCatalog()
	}
	if err != nil {
		return nil, fmt.Errorf("loading drill catalog: %w", err)
	}

	prescriber, err := prescription.NewEngine(drills)
	if err != nil {
		return nil, err
	}
	return analysis.New(scoring.NewEngine(cfg.Policy()), prescriber), nil
}

// loadCapture reads a capture file, naming it after the file when it has
// no ID of its own.
func loadCapture(path string) (*kinematics.Capture, error) {
	c, err := kinematics.LoadCapture(path)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, nil
}

// mergeMeasurements overlays measurements from a YAML file of key: value pairs.
func mergeMeasurements(c *kinematics.Capture, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading measurements: %w", err)
	}
	var m map[string]float64
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parsing measurements: %w", err)
	}
	if c.Measurements == nil {
		c.Measurements = make(map[string]float64, len(m))
	}
	for k, v := range m {
		c.Measurements[k] = v
	}
	return nil
}

// loadResult reads either a saved analysis result or a raw capture. Captures
// are analyzed on the fly.
func loadResult(path string, an *analysis.Analyzer) (*analysis.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var envelope struct {
		Report json.RawMessage `json:"report"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(envelope.Report) > 0 {
		var res analysis.Result
		if err := json.Unmarshal(data, &res); err != nil {
			return nil, fmt.Errorf("parsing result %s: %w", path, err)
		}
		return &res, nil
	}

	c, err := kinematics.DecodeCapture(data)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return an.Analyze(c)
}

// saveResult persists a result to the report cache directory.
func saveResult(res *analysis.Result) {
	dir := config.ReportDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.Warnf("failed to create report dir: %v", err)
		return
	}

	wrapped := struct {
		*analysis.Result
		AnalyzedAt string `json:"analyzed_at"`
	}{
		Result:     res,
		AnalyzedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(wrapped, "", "  ")
	if err != nil {
		logrus.Warnf("failed to marshal result: %v", err)
		return
	}

	path := filepath.Join(dir, res.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logrus.Warnf("failed to save result: %v", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Result saved: %s\n", path)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
