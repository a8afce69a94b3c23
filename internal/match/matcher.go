// Package match computes resume-to-job-posting fit scores and ranks
// candidate postings.
package match

import (
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights for the four matching factors. They sum to 1.0.
const (
	skillMatchWeight      = 0.60
	keywordScoreWeight    = 0.25
	experienceScoreWeight = 0.10
	recencyScoreWeight    = 0.05
)

// neutralScore is returned for a factor when the posting carries no signal
// for it (no required skills, no description, no posted date).
const neutralScore = 50

// noExperienceScore is returned when the resume has no experience entries
// to compare against the job title.
const noExperienceScore = 30

// minKeywordLen is the exclusive lower bound on token length for keyword
// matching.
const minKeywordLen = 3

// Matcher scores a resume against job postings. Immutable after
// construction and safe for concurrent use.
type Matcher struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// NewMatcher creates a Matcher backed by the given lexicon. A nil logger
// disables degraded-path logging.
func NewMatcher(lex *lexicon.Lexicon, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{lex: lex, log: log}
}

// Score computes the four sub-scores and the weighted total for one
// resume/posting pair. It never returns an error: an internal fault
// degrades to a zero MatchScore with empty skill lists, reported through
// the second return value.
func (m *Matcher) Score(resume types.StructuredResume, job types.JobPosting) (result types.MatchScore, degraded bool) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn("match scoring failed, returning zero score",
				zap.String("job_id", job.ID), zap.Any("cause", r))
			result = types.MatchScore{
				JobID:         job.ID,
				MatchedSkills: []string{},
				MissingSkills: []string{},
			}
			degraded = true
		}
	}()

	skillScore, matched, missing := m.scoreSkills(resume.Skills, job.RequiredSkills)

	result = types.MatchScore{
		JobID: job.ID,
		Breakdown: types.MatchBreakdown{
			SkillMatch:      skillScore,
			KeywordScore:    m.scoreKeywords(resume, job.Description),
			ExperienceScore: m.scoreExperience(resume.Experience, job.Title),
			RecencyScore:    scoreRecency(job.PostedAt, time.Now()),
		},
		MatchedSkills: matched,
		MissingSkills: missing,
	}
	result.Score = clampScore(math.Round(
		skillMatchWeight*float64(result.Breakdown.SkillMatch) +
			keywordScoreWeight*float64(result.Breakdown.KeywordScore) +
			experienceScoreWeight*float64(result.Breakdown.ExperienceScore) +
			recencyScoreWeight*float64(result.Breakdown.RecencyScore)))

	return result, false
}

// scoreSkills intersects the resume's skills with the posting's required
// skills, case-insensitively. The matched and missing lists partition the
// required set exactly, preserving the posting's spelling and order. A
// posting without required skills scores neutral.
func (m *Matcher) scoreSkills(resumeSkills, requiredSkills []string) (score int, matched, missing []string) {
	matched, missing = []string{}, []string{}
	if len(requiredSkills) == 0 {
		return neutralScore, matched, missing
	}

	haveSkill := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		haveSkill[strings.ToLower(strings.TrimSpace(skill))] = struct{}{}
	}

	for _, required := range requiredSkills {
		if _, ok := haveSkill[strings.ToLower(strings.TrimSpace(required))]; ok {
			matched = append(matched, required)
		} else {
			missing = append(missing, required)
		}
	}

	percentage := float64(len(matched)) / float64(len(requiredSkills)) * 100
	score = int(math.Round(percentage))
	if len(matched) == len(requiredSkills) {
		score += 20 // full coverage bonus
	}
	return min(score, 100), matched, missing
}

// scoreKeywords measures how much of the posting description's vocabulary
// also appears in the resume text. Empty descriptions score neutral.
func (m *Matcher) scoreKeywords(resume types.StructuredResume, description string) int {
	if strings.TrimSpace(description) == "" {
		return neutralScore
	}

	resumeTokens := m.keywordSet(resumeText(resume))
	descTokens := m.keywordSet(description)
	if len(descTokens) == 0 {
		return neutralScore
	}

	matches := 0
	for token := range descTokens {
		if _, ok := resumeTokens[token]; ok {
			matches++
		}
	}

	score := int(math.Round(float64(matches) / float64(len(descTokens)) * 100))
	return min(score, 100)
}

// scoreExperience compares the resume's experience entries against the job
// title: per entry the better of a title-overlap relevance and a
// half-weighted description relevance, maximized across entries.
func (m *Matcher) scoreExperience(entries []types.ExperienceEntry, jobTitle string) int {
	if len(entries) == 0 {
		return noExperienceScore
	}

	titleKeywords := m.keywords(jobTitle)
	if len(titleKeywords) == 0 {
		return noExperienceScore
	}

	best := 0.0
	for _, entry := range entries {
		entryTitle := strings.ToLower(entry.Title)
		entryTokens := strings.Fields(entryTitle)

		// Title overlap, tolerant of substrings in either direction
		// ("developer" in "senior developer", "dev" in "developer").
		overlap := 0
		for _, keyword := range titleKeywords {
			if strings.Contains(entryTitle, keyword) {
				overlap++
				continue
			}
			for _, token := range entryTokens {
				if strings.Contains(keyword, token) {
					overlap++
					break
				}
			}
		}
		titleRelevance := float64(overlap) / float64(len(titleKeywords)) * 100

		descText := strings.ToLower(strings.Join(entry.Description, " "))
		contained := 0
		for _, keyword := range titleKeywords {
			if strings.Contains(descText, keyword) {
				contained++
			}
		}
		descRelevance := float64(contained) / float64(len(titleKeywords)) * 50

		best = math.Max(best, math.Max(titleRelevance, descRelevance))
	}

	return clampScore(math.Round(best))
}

// scoreRecency maps the posting's age in days onto a banded score. A
// missing posted date scores neutral.
func scoreRecency(postedAt *time.Time, now time.Time) int {
	if postedAt == nil {
		return neutralScore
	}

	days := now.Sub(*postedAt).Hours() / 24
	switch {
	case days <= 7:
		return 100
	case days <= 14:
		return 80
	case days <= 30:
		return 60
	case days <= 60:
		return 40
	default:
		return 20
	}
}

// keywords tokenizes text into lower-cased words longer than minKeywordLen
// characters, excluding stop words, preserving order of first appearance.
func (m *Matcher) keywords(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:()/&-")
		if len(token) <= minKeywordLen || m.lex.IsStopWord(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// keywordSet is the set form of keywords.
func (m *Matcher) keywordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range m.keywords(text) {
		set[token] = struct{}{}
	}
	return set
}

// resumeText returns the resume's raw text, reconstructing an equivalent
// from the structured fields if the raw text was not carried along.
func resumeText(resume types.StructuredResume) string {
	if resume.RawText != "" {
		return resume.RawText
	}

	var sb strings.Builder
	sb.WriteString(resume.Summary)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(resume.Skills, " "))
	for _, entry := range resume.Experience {
		sb.WriteString(" ")
		sb.WriteString(entry.Company)
		sb.WriteString(" ")
		sb.WriteString(entry.Title)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(entry.Description, " "))
	}
	for _, project := range resume.Projects {
		sb.WriteString(" ")
		sb.WriteString(project.Name)
		sb.WriteString(" ")
		sb.WriteString(project.Description)
	}
	return sb.String()
}

// clampScore bounds a rounded score to [0,100].
func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
