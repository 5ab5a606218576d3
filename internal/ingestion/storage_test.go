package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetCapture(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"kinematics":{}}`)
	if err := s.PutCapture(ctx, "athlete1", "swing1", data); err != nil {
		t.Fatalf("PutCapture: %v", err)
	}

	got, err := s.GetCapture(ctx, "athlete1", "swing1")
	if err != nil {
		t.Fatalf("GetCapture: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetCapture = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "athlete1", "captures", "swing1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetReport(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"report":{}}`)
	if err := s.PutReport(ctx, "athlete1", "swing1", data); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "athlete1", "swing1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetReport = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "athlete1", "reports", "swing1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageUnassignedAthlete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	if err := s.PutCapture(context.Background(), "", "swing1", []byte("{}")); err != nil {
		t.Fatalf("PutCapture: %v", err)
	}
	expectedPath := filepath.Join(dir, unassignedAthlete, "captures", "swing1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	_, err := s.GetReport(ctx, "athlete1", "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
