package ingestion

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/kinematics"
)

// Analyzer abstracts the analysis pipeline so the ingestion package does not
// depend on a concrete implementation.
type Analyzer interface {
	Analyze(c *kinematics.Capture) (*analysis.Result, error)
}

// ErrAmbiguousSwing is returned when a swing ID without an athlete matches
// swings of several athletes.
var ErrAmbiguousSwing = errors.New("swing id belongs to more than one athlete")

// Outcome is what one processed swing produced.
type Outcome struct {
	ScoreID string           `json:"score_id,omitempty"`
	Result  *analysis.Result `json:"result"`
}

// ScoreRow is a persisted swing score summary.
type ScoreRow struct {
	ID              string    `json:"id"`
	AthleteID       string    `json:"athlete_id"`
	SwingID         string    `json:"swing_id"`
	Overall         float64   `json:"overall"`
	Anchor          float64   `json:"anchor"`
	Stability       float64   `json:"stability"`
	Whip            float64   `json:"whip"`
	SequenceOverall float64   `json:"sequence_overall"`
	Severity        string    `json:"severity"`
	CreatedAt       time.Time `json:"created_at"`
}

// Service orchestrates the ingestion pipeline. The database is optional:
// with a nil db, results are kept in blob storage only.
type Service struct {
	db       *sql.DB
	storage  StorageClient
	analyzer Analyzer
}

// NewService creates a new ingestion Service.
func NewService(db *sql.DB, storage StorageClient, analyzer Analyzer) *Service {
	return &Service{
		db:       db,
		storage:  storage,
		analyzer: analyzer,
	}
}

// Ingest stores a new capture and processes it. A capture without an ID is
// assigned a fresh UUID.
func (s *Service) Ingest(ctx context.Context, c *kinematics.Capture) (*Outcome, error) {
	if c == nil {
		return nil, fmt.Errorf("capture is nil")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := c.Kinematics.Normalize(); err != nil {
		return nil, fmt.Errorf("validating kinematics: %w", err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal capture: %w", err)
	}
	if err := s.storage.PutCapture(ctx, c.AthleteID, c.ID, data); err != nil {
		return nil, fmt.Errorf("put capture blob: %w", err)
	}

	return s.process(ctx, c)
}

// ProcessSwing re-runs the pipeline for a capture already in storage.
func (s *Service) ProcessSwing(ctx context.Context, athleteID, swingID string) (*Outcome, error) {
	data, err := s.storage.GetCapture(ctx, athleteID, swingID)
	if err != nil {
		return nil, fmt.Errorf("load capture: %w", err)
	}
	c, err := kinematics.DecodeCapture(data)
	if err != nil {
		return nil, err
	}
	c.ID = swingID
	c.AthleteID = athleteID

	return s.process(ctx, c)
}

func (s *Service) process(ctx context.Context, c *kinematics.Capture) (*Outcome, error) {
	start := time.Now()
	result, err := s.analyzer.Analyze(c)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	reportRef := objectKey(c.AthleteID, kindReports, c.ID)
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := s.storage.PutReport(ctx, c.AthleteID, c.ID, data); err != nil {
		return nil, fmt.Errorf("put report blob: %w", err)
	}

	out := &Outcome{Result: result}
	if s.db != nil {
		out.ScoreID, err = s.storeScore(ctx, result, reportRef)
		if err != nil {
			return nil, fmt.Errorf("store score: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"swing":    c.ID,
		"athlete":  c.AthleteID,
		"overall":  result.Report.Swing.Overall,
		"drills":   len(result.Prescription.Recommendations),
		"duration": time.Since(start),
	}).Info("swing processed")

	return out, nil
}

func (s *Service) storeScore(ctx context.Context, result *analysis.Result, reportRef string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	swing := result.Report.Swing
	var id string
	err = tx.QueryRowContext(ctx,
		`INSERT INTO swing_scores (id, athlete_id, swing_id, overall, anchor, stability, whip, sequence_overall, severity, report_ref)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (athlete_id, swing_id) DO UPDATE SET
		   overall = EXCLUDED.overall, anchor = EXCLUDED.anchor, stability = EXCLUDED.stability,
		   whip = EXCLUDED.whip, sequence_overall = EXCLUDED.sequence_overall,
		   severity = EXCLUDED.severity, report_ref = EXCLUDED.report_ref
		 RETURNING id`,
		uuid.NewString(), result.AthleteID, result.ID,
		swing.Overall, swing.Anchor.Score, swing.Stability.Score, swing.Whip.Score,
		result.Report.Sequence.Overall, string(result.Report.Severity), reportRef,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert swing score row: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendations WHERE score_id = $1`, id); err != nil {
		return "", fmt.Errorf("clear recommendations: %w", err)
	}
	for i, rec := range result.Prescription.Recommendations {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recommendations (score_id, rank, drill_id, priority, reason)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, i+1, rec.Drill.ID, rec.Priority, rec.Reason,
		)
		if err != nil {
			return "", fmt.Errorf("insert recommendation %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// LoadResult reads a stored analysis. When athleteID is empty the owner is
// looked up in the database; a swing ID used by more than one athlete
// yields ErrAmbiguousSwing.
func (s *Service) LoadResult(ctx context.Context, athleteID, swingID string) (*analysis.Result, error) {
	if athleteID == "" && s.db != nil {
		owner, err := s.swingOwner(ctx, swingID)
		if err != nil {
			return nil, err
		}
		athleteID = owner
	}

	data, err := s.storage.GetReport(ctx, athleteID, swingID)
	if err != nil {
		return nil, err
	}
	var result analysis.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &result, nil
}

func (s *Service) swingOwner(ctx context.Context, swingID string) (string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT athlete_id FROM swing_scores WHERE swing_id = $1 LIMIT 2`, swingID,
	)
	if err != nil {
		return "", fmt.Errorf("lookup swing owner: %w", err)
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return "", fmt.Errorf("scan swing owner: %w", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("lookup swing owner: %w", err)
	}

	switch len(owners) {
	case 0:
		return "", fmt.Errorf("swing %s: %w", swingID, ErrNotFound)
	case 1:
		return owners[0], nil
	default:
		return "", fmt.Errorf("swing %s: %w", swingID, ErrAmbiguousSwing)
	}
}

// History returns an athlete's most recent swing scores, newest first.
func (s *Service) History(ctx context.Context, athleteID string, limit int) ([]ScoreRow, error) {
	if s.db == nil {
		return nil, fmt.Errorf("history requires a database")
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, athlete_id, swing_id, overall, anchor, stability, whip, sequence_overall, severity, created_at
		 FROM swing_scores WHERE athlete_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		athleteID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []ScoreRow
	for rows.Next() {
		var r ScoreRow
		if err := rows.Scan(&r.ID, &r.AthleteID, &r.SwingID, &r.Overall, &r.Anchor, &r.Stability,
			&r.Whip, &r.SequenceOverall, &r.Severity, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

