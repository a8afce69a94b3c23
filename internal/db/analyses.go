package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analysis is a stored ATS analysis result.
type Analysis struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Resume    types.StructuredResume `json:"resume"`
	Breakdown types.ScoreBreakdown   `json:"breakdown"`
	CreatedAt time.Time              `json:"created_at"`
}

// SaveAnalysis stores a structured resume and its ATS breakdown for a user
// and returns the new record's ID.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, resume types.StructuredResume, breakdown types.ScoreBreakdown) (uuid.UUID, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_analyses (user_id, resume, breakdown, total_score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, resumeJSON, breakdownJSON, breakdown.Total,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when the
// record does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	var a Analysis
	var resumeJSON, breakdownJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, resume, breakdown, created_at
		 FROM resume_analyses WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &resumeJSON, &breakdownJSON, &a.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(resumeJSON, &a.Resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored resume: %w", err)
	}
	if err := json.Unmarshal(breakdownJSON, &a.Breakdown); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored breakdown: %w", err)
	}
	return &a, nil
}
