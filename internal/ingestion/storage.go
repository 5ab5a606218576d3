// Package ingestion stores swing captures, runs the analysis pipeline over
// them, and persists the resulting scores and drill recommendations.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by every StorageClient when a blob does not exist.
var ErrNotFound = errors.New("blob not found")

const (
	kindCaptures = "captures"
	kindReports  = "reports"

	// unassignedAthlete groups swings uploaded without an athlete ID.
	unassignedAthlete = "_unassigned"
)

// StorageClient abstracts blob storage for swing captures and analysis reports.
type StorageClient interface {
	PutCapture(ctx context.Context, athleteID, swingID string, data []byte) error
	GetCapture(ctx context.Context, athleteID, swingID string) ([]byte, error)
	PutReport(ctx context.Context, athleteID, swingID string, data []byte) error
	GetReport(ctx context.Context, athleteID, swingID string) ([]byte, error)
}

// objectKey is the shared blob layout: <athlete>/<kind>/<swing>.json.
func objectKey(athleteID, kind, swingID string) string {
	if athleteID == "" {
		athleteID = unassignedAthlete
	}
	return athleteID + "/" + kind + "/" + swingID + ".json"
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(athleteID, kind, swingID string) string {
	return filepath.Join(s.BaseDir, filepath.FromSlash(objectKey(athleteID, kind, swingID)))
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalStorage) get(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, ErrNotFound)
	}
	return data, err
}

// PutCapture stores a raw swing capture blob.
func (s *LocalStorage) PutCapture(ctx context.Context, athleteID, swingID string, data []byte) error {
	return s.put(s.path(athleteID, kindCaptures, swingID), data)
}

// GetCapture retrieves a raw swing capture blob.
func (s *LocalStorage) GetCapture(ctx context.Context, athleteID, swingID string) ([]byte, error) {
	return s.get(s.path(athleteID, kindCaptures, swingID))
}

// PutReport stores an analysis report blob.
func (s *LocalStorage) PutReport(ctx context.Context, athleteID, swingID string, data []byte) error {
	return s.put(s.path(athleteID, kindReports, swingID), data)
}

// GetReport retrieves an analysis report blob.
func (s *LocalStorage) GetReport(ctx context.Context, athleteID, swingID string) ([]byte, error) {
	return s.get(s.path(athleteID, kindReports, swingID))
}
