package kinematics_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/swinglab/swinglab/pkg/kinematics"
)

func TestNormalizeAllMissing(t *testing.T) {
	curves, err := kinematics.Record{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if curves.Len() != kinematics.DefaultSampleCount {
		t.Errorf("expected %d samples, got %d", kinematics.DefaultSampleCount, curves.Len())
	}
	for _, seg := range kinematics.Segments {
		c := curves.Get(seg)
		if len(c) != kinematics.DefaultSampleCount {
			t.Errorf("%s: expected %d samples, got %d", seg, kinematics.DefaultSampleCount, len(c))
		}
		for i, v := range c {
			if v != 0 {
				t.Fatalf("%s[%d] = %f, want 0", seg, i, v)
			}
		}
	}
}

func TestNormalizeFillsFromPresentCurve(t *testing.T) {
	rec := kinematics.Record{HandVel: kinematics.Curve{1, 2, 3, 2, 1}}

	curves, err := rec.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if curves.Len() != 5 {
		t.Errorf("expected 5 samples, got %d", curves.Len())
	}
	if len(curves.Torso) != 5 || curves.Torso[2] != 0 {
		t.Errorf("expected zero-filled torso of length 5, got %v", curves.Torso)
	}
	if curves.Hands[2] != 3 {
		t.Errorf("expected hands curve passed through, got %v", curves.Hands)
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	in := kinematics.Curve{1, 2, 3}
	curves, err := kinematics.Record{PelvisAngVel: in}.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	curves.Pelvis[0] = 99
	if in[0] != 1 {
		t.Error("normalized curve aliases caller input")
	}
}

func TestNormalizeRejectsMismatchedLengths(t *testing.T) {
	rec := kinematics.Record{
		PelvisAngVel: kinematics.Curve{1, 2, 3},
		TorsoAngVel:  kinematics.Curve{1, 2},
	}
	_, err := rec.Normalize()
	if !errors.Is(err, kinematics.ErrCurveLengthMismatch) {
		t.Errorf("expected ErrCurveLengthMismatch, got %v", err)
	}
}

func TestCaptureRoundTripOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "swing.json")
	in := &kinematics.Capture{
		ID:           "swing-1",
		AthleteID:    "athlete-7",
		Kinematics:   kinematics.Record{HandVel: kinematics.Curve{0, 1, 0}},
		Measurements: map[string]float64{"bat_lag_angle": 82},
	}

	if err := kinematics.SaveCapture(path, in); err != nil {
		t.Fatalf("SaveCapture: %v", err)
	}
	out, err := kinematics.LoadCapture(path)
	if err != nil {
		t.Fatalf("LoadCapture: %v", err)
	}
	if out.ID != "swing-1" || out.Measurements["bat_lag_angle"] != 82 || len(out.Kinematics.HandVel) != 3 {
		t.Errorf("unexpected capture after load: %+v", out)
	}
}

func TestLoadCaptureMissingFile(t *testing.T) {
	if _, err := kinematics.LoadCapture(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
