package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// StoredMatch is a persisted match score for a (user, job) pair.
type StoredMatch struct {
	UserID    uuid.UUID        `json:"user_id"`
	JobID     string           `json:"job_id"`
	Match     types.MatchScore `json:"match"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UpsertMatch stores a match score, keeping at most one row per
// (user, job) pair; re-scoring the same pair overwrites the previous
// result.
func (db *DB) UpsertMatch(ctx context.Context, userID uuid.UUID, match types.MatchScore) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_matches (user_id, job_id, score, match)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, job_id)
		 DO UPDATE SET score = $3, match = $4, updated_at = NOW()`,
		userID, match.JobID, match.Score, matchJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}
	return nil
}

// ListMatches returns a user's stored matches, best first.
func (db *DB) ListMatches(ctx context.Context, userID uuid.UUID, limit int) ([]StoredMatch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, job_id, match, updated_at
		 FROM job_matches
		 WHERE user_id = $1
		 ORDER BY score DESC, updated_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []StoredMatch
	for rows.Next() {
		var m StoredMatch
		var matchJSON []byte
		if err := rows.Scan(&m.UserID, &m.JobID, &matchJSON, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		if err := json.Unmarshal(matchJSON, &m.Match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match rows: %w", err)
	}
	return matches, nil
}

// isNoRows reports whether err is the pgx no-rows sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
