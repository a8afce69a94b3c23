package types

import "time"

// JobPosting represents a job posting supplied by the ingestion pipeline.
// Postings are consumed read-only; RequiredSkills are extracted upstream
// during ingestion.
type JobPosting struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RequiredSkills []string   `json:"required_skills"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
}
