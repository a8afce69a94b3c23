package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/ingest"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxCandidatePostings bounds the candidate set accepted by /match/rank;
// the ingestion pipeline pre-filters to recency before calling.
const maxCandidatePostings = 100

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	UserID     string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

// AnalyzeResponse is the response for POST /analyze.
type AnalyzeResponse struct {
	Resume     types.StructuredResume `json:"resume"`
	Breakdown  types.ScoreBreakdown   `json:"breakdown"`
	Degraded   bool                   `json:"degraded,omitempty"`
	AnalysisID string                 `json:"analysis_id,omitempty"`
}

// MatchRequest is the request body for POST /match.
type MatchRequest struct {
	ResumeText string           `json:"resume_text" validate:"required"`
	Job        types.JobPosting `json:"job" validate:"required"`
	UserID     string           `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

// RankRequest is the request body for POST /match/rank.
type RankRequest struct {
	ResumeText string             `json:"resume_text" validate:"required"`
	Jobs       []types.JobPosting `json:"jobs" validate:"required,max=100"`
	Limit      int                `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	UserID     string             `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

// RankResponse is the response for POST /match/rank.
type RankResponse struct {
	Matches []types.MatchScore `json:"matches"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze parses a resume and scores it for ATS friendliness.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	resume := s.parser.Parse(ingest.Normalize(req.ResumeText))
	breakdown, degraded := s.scorer.Score(resume)

	resp := AnalyzeResponse{Resume: resume, Breakdown: breakdown, Degraded: degraded}
	if s.db != nil && req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err == nil {
			id, err := s.db.SaveAnalysis(r.Context(), userID, resume, breakdown)
			if err != nil {
				s.log.Warn("failed to persist analysis", zap.Error(err))
			} else {
				resp.AnalysisID = id.String()
			}
		}
	}

	s.respondJSON(w, http.StatusOK, resp)
}

// handleMatch scores one resume against one job posting.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	resume := s.parser.Parse(ingest.Normalize(req.ResumeText))
	req.Job.Description = ingest.Normalize(req.Job.Description)
	score, _ := s.matcher.Score(resume, req.Job)

	s.persistMatch(r.Context(), req.UserID, score)
	s.respondJSON(w, http.StatusOK, score)
}

// handleRank scores a resume against a candidate set of postings and
// returns the ranked top matches.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if len(req.Jobs) > maxCandidatePostings {
		s.respondError(w, http.StatusBadRequest, "too many candidate postings")
		return
	}

	resume := s.parser.Parse(ingest.Normalize(req.ResumeText))
	for i := range req.Jobs {
		req.Jobs[i].Description = ingest.Normalize(req.Jobs[i].Description)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.rankLimit
	}
	matches := s.ranker.Rank(r.Context(), resume, req.Jobs, limit)

	for _, m := range matches {
		s.persistMatch(r.Context(), req.UserID, m)
	}
	s.respondJSON(w, http.StatusOK, RankResponse{Matches: matches})
}

// handleGetAnalysis returns a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, http.StatusNotFound, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.log.Error("failed to get analysis", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if analysis == nil {
		s.respondError(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.respondJSON(w, http.StatusOK, analysis)
}

// handleListMatches returns a user's stored matches, best first.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.respondError(w, http.StatusNotFound, "persistence is not configured")
		return
	}

	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	matches, err := s.db.ListMatches(r.Context(), userID, s.rankLimit)
	if err != nil {
		s.log.Error("failed to list matches", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to list matches")
		return
	}
	s.respondJSON(w, http.StatusOK, matches)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// persistMatch upserts a match score when persistence is configured and a
// user is identified. Persistence failures degrade to a log line; the
// scoring response is served regardless.
func (s *Server) persistMatch(ctx context.Context, userIDStr string, score types.MatchScore) {
	if s.db == nil || userIDStr == "" {
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return
	}
	if err := s.db.UpsertMatch(ctx, userID, score); err != nil {
		s.log.Warn("failed to persist match", zap.String("job_id", score.JobID), zap.Error(err))
	}
}

// decodeAndValidate decodes the JSON body into dst and validates it,
// writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}
