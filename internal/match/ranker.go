package match

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultLimit is the number of ranked matches returned when the caller
// does not specify a limit.
const DefaultLimit = 20

// defaultWorkers bounds concurrent per-posting scoring.
const defaultWorkers = 8

// Ranker applies a Matcher across a candidate set of postings and returns
// a ranked, size-bounded result.
type Ranker struct {
	matcher *Matcher
	workers int
}

// NewRanker creates a Ranker around the given Matcher.
func NewRanker(matcher *Matcher) *Ranker {
	return &Ranker{matcher: matcher, workers: defaultWorkers}
}

// Rank scores the resume against every posting, sorts descending by score
// and returns the top limit entries (DefaultLimit when limit <= 0).
// Per-posting scoring is independent, so postings are scored concurrently;
// the sort is stable, so ties keep the postings' original relative order.
func (r *Ranker) Rank(ctx context.Context, resume types.StructuredResume, jobs []types.JobPosting, limit int) []types.MatchScore {
	if limit <= 0 {
		limit = DefaultLimit
	}

	scores := make([]types.MatchScore, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			scores[i], _ = r.matcher.Score(resume, job)
			return nil
		})
	}
	// Score never errors; a canceled context leaves the unscored tail as
	// zero MatchScores, which sort to the bottom and get truncated away.
	_ = g.Wait()

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}
