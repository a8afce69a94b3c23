// Package ats computes the six-factor ATS friendliness score for a
// structured resume.
package ats

import (
	"math"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights for the six scoring factors. They sum to 1.0.
const (
	skillMatchWeight          = 0.40
	projectStrengthWeight     = 0.20
	experienceRelevanceWeight = 0.15
	resumeStructureWeight     = 0.10
	keywordDensityWeight      = 0.10
	actionVerbsWeight         = 0.05
)

var (
	percentPattern       = regexp.MustCompile(`\d+(\.\d+)?\s*%`)
	userCountPattern     = regexp.MustCompile(`(?i)\b\d[\d,.]*[km]?\+?\s*(users|customers)\b`)
	impactVerbPattern    = regexp.MustCompile(`(?i)\b(reduced|increased|improved|optimized)\b`)
	titleRolePattern     = regexp.MustCompile(`(?i)\b(developer|engineer)\b`)
	seniorityPattern     = regexp.MustCompile(`(?i)\b(senior|lead)\b`)
	fullStackPattern     = regexp.MustCompile(`(?i)\b(full stack|fullstack)\b`)
	leadershipPattern    = regexp.MustCompile(`(?i)\b(led|managed|responsible for)\b`)
	collaborationPattern = regexp.MustCompile(`(?i)\b(team|collaborated|cross-functional)\b`)
)

// Scorer computes ScoreBreakdowns. Immutable after construction and safe
// for concurrent use.
type Scorer struct {
	lex *lexicon.Lexicon
	log *zap.Logger
}

// NewScorer creates a Scorer backed by the given lexicon. A nil logger
// disables degraded-path logging.
func NewScorer(lex *lexicon.Lexicon, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{lex: lex, log: log}
}

// Score computes the six sub-scores and the weighted total for a resume.
// It never returns an error: an internal fault degrades to an all-zero
// breakdown, reported through the second return value so callers and tests
// can tell the fail-safe path from a genuinely zero-scoring resume.
func (s *Scorer) Score(resume types.StructuredResume) (breakdown types.ScoreBreakdown, degraded bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("ats scoring failed, returning zero breakdown", zap.Any("cause", r))
			breakdown = types.ScoreBreakdown{}
			degraded = true
		}
	}()

	breakdown = types.ScoreBreakdown{
		SkillMatch:          s.scoreSkillMatch(resume.Skills),
		ProjectStrength:     s.scoreProjectStrength(resume.Projects),
		ExperienceRelevance: s.scoreExperienceRelevance(resume.Experience),
		ResumeStructure:     scoreResumeStructure(resume),
		KeywordDensity:      s.scoreKeywordDensity(resume),
		ActionVerbs:         s.scoreActionVerbs(resume),
	}
	breakdown.Total = clampScore(math.Round(
		skillMatchWeight*float64(breakdown.SkillMatch) +
			projectStrengthWeight*float64(breakdown.ProjectStrength) +
			experienceRelevanceWeight*float64(breakdown.ExperienceRelevance) +
			resumeStructureWeight*float64(breakdown.ResumeStructure) +
			keywordDensityWeight*float64(breakdown.KeywordDensity) +
			actionVerbsWeight*float64(breakdown.ActionVerbs)))

	return breakdown, false
}

// scoreSkillMatch rewards the size of the extracted skill set, with a flat
// bonus when any high-demand skill is present.
func (s *Scorer) scoreSkillMatch(skills []string) int {
	if len(skills) == 0 {
		return 0
	}

	score := min(len(skills)*5, 70)
	for _, hd := range s.lex.HighDemandSkills() {
		if containsSkill(skills, hd) {
			score += 30
			break
		}
	}
	return min(score, 100)
}

// containsSkill reports whether any extracted skill has needle as a
// substring.
func containsSkill(skills []string, needle string) bool {
	for _, skill := range skills {
		if strings.Contains(skill, needle) {
			return true
		}
	}
	return false
}

// scoreProjectStrength averages a per-project score built from description
// length, technology tags, a linked URL and quality signals in the text,
// then adds a multi-project bonus.
func (s *Scorer) scoreProjectStrength(projects []types.ProjectEntry) int {
	if len(projects) == 0 {
		return 0
	}

	total := 0
	for _, project := range projects {
		points := min(len(project.Description)/20, 30)
		points += min(len(project.Technologies)*5, 30)
		if project.URL != "" {
			points += 20
		}
		if percentPattern.MatchString(project.Description) {
			points += 10
		}
		if userCountPattern.MatchString(project.Description) {
			points += 10
		}
		if impactVerbPattern.MatchString(project.Description) {
			points += 10
		}
		total += min(points, 100)
	}

	average := float64(total) / float64(len(projects))
	score := int(math.Round(average)) + min(len(projects)*5, 20)
	return min(score, 100)
}

// scoreExperienceRelevance averages a per-entry score built from title
// keywords, industry keyword matches and impact/leadership/collaboration
// signals in the entry text.
func (s *Scorer) scoreExperienceRelevance(entries []types.ExperienceEntry) int {
	if len(entries) == 0 {
		return 0
	}

	total := 0
	for _, entry := range entries {
		points := 0
		if titleRolePattern.MatchString(entry.Title) {
			points += 30
		}
		if seniorityPattern.MatchString(entry.Title) {
			points += 20
		}
		if fullStackPattern.MatchString(entry.Title) {
			points += 20
		}

		text := strings.ToLower(entry.Title + " " + strings.Join(entry.Description, " "))
		industryMatches := 0
		for _, keyword := range s.lex.IndustryKeywords() {
			if strings.Contains(text, keyword) {
				industryMatches++
			}
		}
		points += min(industryMatches*5, 30)

		if percentPattern.MatchString(text) {
			points += 10
		}
		if leadershipPattern.MatchString(text) {
			points += 10
		}
		if collaborationPattern.MatchString(text) {
			points += 10
		}

		total += min(points, 100)
	}

	return int(math.Round(float64(total) / float64(len(entries))))
}

// scoreResumeStructure is an additive presence bonus over the resume's
// sections and contact fields.
func scoreResumeStructure(resume types.StructuredResume) int {
	score := 0
	if resume.Summary != "" {
		score += 15
	}
	if len(resume.Skills) > 0 {
		score += 20
	}
	if len(resume.Experience) > 0 {
		score += 25
	}
	if len(resume.Projects) > 0 {
		score += 20
	}
	if len(resume.Education) > 0 {
		score += 20
	}
	if info := resume.PersonalInfo; info != nil {
		if info.Email != "" {
			score += 5
		}
		if info.Phone != "" {
			score += 5
		}
		if info.LinkedIn != "" {
			score += 5
		}
		if info.GitHub != "" {
			score += 5
		}
	}
	return min(score, 100)
}

// scoreKeywordDensity measures the share of technical and industry terms
// among all tokens of the resume's prose. Industry keywords weigh double.
// Densities above 40% score lower again: keyword stuffing reads worse to
// an ATS than balanced prose.
func (s *Scorer) scoreKeywordDensity(resume types.StructuredResume) int {
	var sb strings.Builder
	sb.WriteString(resume.Summary)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(resume.Skills, " "))
	for _, entry := range resume.Experience {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(entry.Description, " "))
	}
	for _, project := range resume.Projects {
		sb.WriteString(" ")
		sb.WriteString(project.Description)
	}

	var tokens []string
	for _, token := range strings.Fields(strings.ToLower(sb.String())) {
		if len(token) > 2 {
			tokens = append(tokens, strings.Trim(token, ".,;:()"))
		}
	}
	if len(tokens) == 0 {
		return 0
	}

	technical, industry := 0, 0
	industrySet := make(map[string]struct{}, len(s.lex.IndustryKeywords()))
	for _, keyword := range s.lex.IndustryKeywords() {
		industrySet[keyword] = struct{}{}
	}
	for _, token := range tokens {
		if s.lex.HasSkill(token) {
			technical++
		}
		if _, ok := industrySet[token]; ok {
			industry++
		}
	}

	density := float64(technical+2*industry) / float64(len(tokens)) * 100
	switch {
	case density < 10:
		return 30
	case density < 20:
		return 60
	case density <= 30:
		return 100
	case density <= 40:
		return 80
	default:
		return 60
	}
}

// scoreActionVerbs maps the fraction of bullet lines opening with a strong
// action verb onto a banded score.
func (s *Scorer) scoreActionVerbs(resume types.StructuredResume) int {
	var bullets []string
	for _, entry := range resume.Experience {
		bullets = append(bullets, entry.Description...)
	}
	for _, project := range resume.Projects {
		if project.Description != "" {
			bullets = append(bullets, project.Description)
		}
	}
	if len(bullets) == 0 {
		return 0
	}

	withVerb := 0
	for _, bullet := range bullets {
		if s.lex.IsActionVerb(firstWord(bullet)) {
			withVerb++
		}
	}

	fraction := float64(withVerb) / float64(len(bullets))
	switch {
	case fraction >= 0.8:
		return 100
	case fraction >= 0.6:
		return 80
	case fraction >= 0.4:
		return 60
	case fraction >= 0.2:
		return 40
	default:
		return 20
	}
}

// firstWord returns the lower-cased first word of a bullet, with leading
// bullet glyphs stripped.
func firstWord(line string) string {
	line = strings.TrimLeft(line, "-*•·> \t")
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,;:")
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
