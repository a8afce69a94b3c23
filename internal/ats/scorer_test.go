package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func newTestScorer() *Scorer {
	return NewScorer(lexicon.Default(), nil)
}

func TestScoreSkillMatch_EmptySkills(t *testing.T) {
	assert.Equal(t, 0, newTestScorer().scoreSkillMatch(nil))
}

func TestScoreSkillMatch_CountAndHighDemandBonus(t *testing.T) {
	s := newTestScorer()

	// Two skills, neither high demand.
	assert.Equal(t, 10, s.scoreSkillMatch([]string{"java", "ruby"}))

	// One high-demand skill triggers the flat bonus once.
	assert.Equal(t, 35, s.scoreSkillMatch([]string{"docker"}))
	assert.Equal(t, 40, s.scoreSkillMatch([]string{"docker", "python"}))
}

func TestScoreSkillMatch_CapsAtHundred(t *testing.T) {
	s := newTestScorer()

	skills := []string{
		"docker", "go", "python", "java", "ruby", "rust", "kotlin", "scala",
		"react", "vue", "angular", "redis", "mysql", "kafka", "nginx", "linux",
		"terraform", "ansible", "jenkins", "helm",
	}

	assert.Equal(t, 100, s.scoreSkillMatch(skills))
}

func TestScoreProjectStrength_NoProjects(t *testing.T) {
	assert.Equal(t, 0, newTestScorer().scoreProjectStrength(nil))
}

func TestScoreProjectStrength_LengthTechsAndURL(t *testing.T) {
	s := newTestScorer()

	project := types.ProjectEntry{
		Description:  strings.Repeat("x", 600),
		Technologies: []string{"go", "redis", "docker", "react", "vue", "kafka"},
		URL:          "https://example.com/repo",
	}

	// 30 length + 30 techs + 20 URL, plus the single-project bonus.
	assert.Equal(t, 85, s.scoreProjectStrength([]types.ProjectEntry{project}))

	// Two identical projects raise the bonus, not the average.
	assert.Equal(t, 90, s.scoreProjectStrength([]types.ProjectEntry{project, project}))
}

func TestScoreProjectStrength_QualitySignals(t *testing.T) {
	s := newTestScorer()

	project := types.ProjectEntry{
		Description: "Reduced load times by 35% for 10,000+ users",
	}

	// 2 length points, three quality signals, single-project bonus.
	assert.Equal(t, 37, s.scoreProjectStrength([]types.ProjectEntry{project}))
}

func TestScoreExperienceRelevance_NoEntries(t *testing.T) {
	assert.Equal(t, 0, newTestScorer().scoreExperienceRelevance(nil))
}

func TestScoreExperienceRelevance_TitleAndSignals(t *testing.T) {
	s := newTestScorer()

	entry := types.ExperienceEntry{
		Title:       "Senior Software Engineer",
		Description: []string{"Led a cross-functional team delivering microservices"},
	}

	// 30 role + 20 seniority + 10 industry + 10 leadership + 10 collaboration.
	assert.Equal(t, 80, s.scoreExperienceRelevance([]types.ExperienceEntry{entry}))
}

func TestScoreExperienceRelevance_AveragesEntries(t *testing.T) {
	s := newTestScorer()

	strong := types.ExperienceEntry{
		Title:       "Senior Software Engineer",
		Description: []string{"Led a cross-functional team delivering microservices"},
	}
	weak := types.ExperienceEntry{
		Title:       "Intern",
		Description: []string{"Wrote onboarding documentation"},
	}

	assert.Equal(t, 40, s.scoreExperienceRelevance([]types.ExperienceEntry{strong, weak}))
}

func TestScoreResumeStructure_Additive(t *testing.T) {
	assert.Equal(t, 0, scoreResumeStructure(types.StructuredResume{}))
	assert.Equal(t, 15, scoreResumeStructure(types.StructuredResume{Summary: "x"}))
	assert.Equal(t, 20, scoreResumeStructure(types.StructuredResume{Skills: []string{"go"}}))

	full := types.StructuredResume{
		PersonalInfo: &types.PersonalInfo{
			Email:    "a@b.co",
			Phone:    "555-123-4567",
			LinkedIn: "linkedin.com/in/a",
			GitHub:   "github.com/a",
		},
		Summary:    "x",
		Skills:     []string{"go"},
		Experience: []types.ExperienceEntry{{Company: "Acme"}},
		Projects:   []types.ProjectEntry{{Name: "Tracker"}},
		Education:  []types.EducationEntry{{Institution: "State College"}},
	}
	assert.Equal(t, 100, scoreResumeStructure(full))
}

func TestScoreKeywordDensity_Bands(t *testing.T) {
	s := newTestScorer()

	// No prose at all.
	assert.Equal(t, 0, s.scoreKeywordDensity(types.StructuredResume{}))

	// 0 of 8 tokens technical: under 10%.
	assert.Equal(t, 30, s.scoreKeywordDensity(types.StructuredResume{
		Summary: "plain words about nothing relevant here today whatsoever",
	}))

	// 2 of 8 tokens technical: 25%, the sweet spot.
	assert.Equal(t, 100, s.scoreKeywordDensity(types.StructuredResume{
		Skills: []string{"python", "docker"},
		Experience: []types.ExperienceEntry{
			{Description: []string{"team collaboration daily standup meetings happen"}},
		},
	}))

	// 3 of 3 tokens technical: stuffing scores lower again.
	assert.Equal(t, 60, s.scoreKeywordDensity(types.StructuredResume{
		Skills: []string{"python", "docker", "react"},
	}))
}

func TestScoreActionVerbs_Bands(t *testing.T) {
	s := newTestScorer()

	assert.Equal(t, 0, s.scoreActionVerbs(types.StructuredResume{}))

	resume := types.StructuredResume{
		Experience: []types.ExperienceEntry{{
			Description: []string{
				"- Built the ingest path",
				"- Led the migration",
				"* Managed two vendors",
				"worked on various tasks",
			},
		}},
	}
	// 3 of 4 bullets open with a verb.
	assert.Equal(t, 80, s.scoreActionVerbs(resume))

	all := types.StructuredResume{
		Experience: []types.ExperienceEntry{{
			Description: []string{"Shipped the rewrite", "Delivered the rollout"},
		}},
	}
	assert.Equal(t, 100, s.scoreActionVerbs(all))

	none := types.StructuredResume{
		Experience: []types.ExperienceEntry{{
			Description: []string{"various duties as assigned"},
		}},
	}
	assert.Equal(t, 20, s.scoreActionVerbs(none))
}

func TestScoreActionVerbs_ProjectDescriptionCountsAsOneBullet(t *testing.T) {
	s := newTestScorer()

	resume := types.StructuredResume{
		Projects: []types.ProjectEntry{
			{Name: "Tracker", Description: "Built a productivity tool"},
		},
	}

	assert.Equal(t, 100, s.scoreActionVerbs(resume))
}

func TestScore_WeightedTotal(t *testing.T) {
	s := newTestScorer()

	resume := types.StructuredResume{
		Summary: "team collaboration daily standup meetings happen",
		Skills:  []string{"python", "docker"},
	}

	breakdown, degraded := s.Score(resume)

	assert.False(t, degraded)
	assert.Equal(t, 40, breakdown.SkillMatch)
	assert.Equal(t, 0, breakdown.ProjectStrength)
	assert.Equal(t, 0, breakdown.ExperienceRelevance)
	assert.Equal(t, 35, breakdown.ResumeStructure)
	assert.Equal(t, 100, breakdown.KeywordDensity)
	assert.Equal(t, 0, breakdown.ActionVerbs)

	// 0.40*40 + 0.10*35 + 0.10*100 rounds to 30.
	assert.Equal(t, 30, breakdown.Total)
}

func TestScore_EmptyResumeIsZeroNotDegraded(t *testing.T) {
	s := newTestScorer()

	breakdown, degraded := s.Score(types.StructuredResume{})

	assert.False(t, degraded)
	assert.Equal(t, types.ScoreBreakdown{}, breakdown)
}
