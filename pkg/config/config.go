// Package config handles loading and managing swinglab configuration.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/swinglab/swinglab/pkg/scoring"
)

// Config is the top-level configuration for swinglab.
type Config struct {
	Scoring      ScoringConfig      `yaml:"scoring"`
	Prescription PrescriptionConfig `yaml:"prescription"`
	Storage      StorageConfig      `yaml:"storage"`
	Server       ServerConfig       `yaml:"server"`
}

// ScoringConfig controls scoring weights.
type ScoringConfig struct {
	PillarWeights   scoring.PillarWeights   `yaml:"pillar_weights"`
	SequenceWeights scoring.SequenceWeights `yaml:"sequence_weights"`
}

// PrescriptionConfig controls drill selection.
type PrescriptionConfig struct {
	CatalogPath string `yaml:"catalog_path"`
}

// StorageConfig selects and configures the blob store.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // local, s3 or gcs
	LocalPath string `yaml:"local_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
}

// ServerConfig controls the swinglabd service.
type ServerConfig struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	APIKey      string `yaml:"api_key"`
	LogLevel    string `yaml:"log_level"`
	Workers     int    `yaml:"workers"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	p := scoring.Defaults()
	return &Config{
		Scoring: ScoringConfig{
			PillarWeights:   p.Pillars,
			SequenceWeights: p.Sequence,
		},
		Storage: StorageConfig{
			Backend:   "local",
			LocalPath: "/tmp/swinglab-data",
		},
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
			Workers:  4,
		},
	}
}

// Policy returns the default scoring policy with the configured weights.
func (c *Config) Policy() scoring.Policy {
	p := scoring.Defaults()
	p.Pillars = c.Scoring.PillarWeights
	p.Sequence = c.Scoring.SequenceWeights
	return p
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// The kinetic sequence overall is a weighted sum, not a weighted mean, so
// overriding one weight must be balanced by the others.
func (c *Config) validate() error {
	w := c.Scoring.SequenceWeights
	var sum float64
	for _, v := range []float64{w.Order, w.Spacing, w.AccelDecel, w.Energy} {
		if v < 0 {
			return fmt.Errorf("scoring.sequence_weights: negative weight %g", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("scoring.sequence_weights must sum to 1, got %g", sum)
	}
	return nil
}

// FindConfigFile looks for .swinglab/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".swinglab", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the per-user cache directory, ~/.cache/swinglab.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "swinglab")
}

// ReportDir returns the directory where the CLI saves analysis results.
func ReportDir() string {
	return filepath.Join(CacheDir(), "reports")
}
