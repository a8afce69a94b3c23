package types

// ScoreBreakdown is the six-factor ATS score for a structured resume.
// Every sub-score and the total are integers in [0,100].
type ScoreBreakdown struct {
	SkillMatch          int `json:"skill_match"`
	ProjectStrength     int `json:"project_strength"`
	ExperienceRelevance int `json:"experience_relevance"`
	ResumeStructure     int `json:"resume_structure"`
	KeywordDensity      int `json:"keyword_density"`
	ActionVerbs         int `json:"action_verbs"`
	Total               int `json:"total"`
}

// MatchScore is the fit score between one resume and one job posting.
// MatchedSkills and MissingSkills partition the posting's required skills:
// their union equals the required set and they are disjoint.
type MatchScore struct {
	JobID         string         `json:"job_id"`
	Score         int            `json:"score"`
	Breakdown     MatchBreakdown `json:"breakdown"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
}

// MatchBreakdown holds the four weighted sub-scores behind a MatchScore.
type MatchBreakdown struct {
	SkillMatch      int `json:"skill_match"`
	KeywordScore    int `json:"keyword_score"`
	ExperienceScore int `json:"experience_score"`
	RecencyScore    int `json:"recency_score"`
}
