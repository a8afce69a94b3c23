package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 0}, nil)
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

const handlerResume = `Summary
Backend engineer who ships.

Skills
Go, Python, Docker

Experience
Acme Inc | Software Engineer
- Built the billing pipeline
`

func TestHandleAnalyze_ScoresResume(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleAnalyze, "/analyze", AnalyzeRequest{ResumeText: handlerResume})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Degraded)
	assert.Contains(t, resp.Resume.Skills, "go")
	assert.Greater(t, resp.Breakdown.Total, 0)
	assert.LessOrEqual(t, resp.Breakdown.Total, 100)
	assert.Empty(t, resp.AnalysisID)
}

func TestHandleAnalyze_MissingResumeText(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleAnalyze, "/analyze", AnalyzeRequest{})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "validation failed")
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	s.handleAnalyze(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleMatch_ReturnsScore(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleMatch, "/match", MatchRequest{
		ResumeText: handlerResume,
		Job: types.JobPosting{
			ID:             "job-1",
			Title:          "Software Engineer",
			Description:    "<p>Ship Go services</p>",
			RequiredSkills: []string{"go", "python", "terraform"},
		},
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var score types.MatchScore
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&score))
	assert.Equal(t, "job-1", score.JobID)
	assert.ElementsMatch(t, []string{"go", "python"}, score.MatchedSkills)
	assert.Equal(t, []string{"terraform"}, score.MissingSkills)
}

func TestHandleRank_SortsAndLimits(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleRank, "/match/rank", RankRequest{
		ResumeText: handlerResume,
		Jobs: []types.JobPosting{
			{ID: "bad", RequiredSkills: []string{"cobol"}},
			{ID: "good", RequiredSkills: []string{"go", "docker"}},
			{ID: "ok", RequiredSkills: []string{"go", "terraform"}},
		},
		Limit: 2,
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp RankResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "good", resp.Matches[0].JobID)
	assert.Equal(t, "ok", resp.Matches[1].JobID)
}

func TestHandleRank_RejectsOversizedLimit(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleRank, "/match/rank", RankRequest{
		ResumeText: "text",
		Jobs:       []types.JobPosting{{ID: "a"}},
		Limit:      500,
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleListMatches_WithoutPersistence(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/matches/abc", nil)
	rr := httptest.NewRecorder()
	s.handleListMatches(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleGetAnalysis_WithoutPersistence(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyses/abc", nil)
	rr := httptest.NewRecorder()
	s.handleGetAnalysis(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.handleHealth(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestMiddleware_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddleware_AuthRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 0}, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{}"))
	rr := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Health stays open for probes.
	health := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}
