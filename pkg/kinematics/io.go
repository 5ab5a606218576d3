package kinematics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Capture is one recorded swing: the velocity curves plus the scalar
// measurements produced by the upstream biomechanics pipeline.
type Capture struct {
	ID           string             `json:"id,omitempty" yaml:"id,omitempty"`
	AthleteID    string             `json:"athlete_id,omitempty" yaml:"athlete_id,omitempty"`
	Kinematics   Record             `json:"kinematics" yaml:"kinematics"`
	Measurements map[string]float64 `json:"measurements,omitempty" yaml:"measurements,omitempty"`
}

// SaveCapture writes a capture to disk as JSON.
func SaveCapture(path string, c *Capture) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for capture: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling capture: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing capture: %w", err)
	}

	return nil
}

// LoadCapture reads a capture from disk.
func LoadCapture(path string) (*Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	return DecodeCapture(data)
}

// DecodeCapture parses a JSON capture.
func DecodeCapture(data []byte) (*Capture, error) {
	var c Capture
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshaling capture: %w", err)
	}
	return &c, nil
}
