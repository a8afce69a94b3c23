package analyzer

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Parser converts raw resume text into a StructuredResume. A Parser is
// immutable after construction and safe for concurrent use.
type Parser struct {
	lex *lexicon.Lexicon
}

// NewParser creates a Parser backed by the given lexicon.
func NewParser(lex *lexicon.Lexicon) *Parser {
	return &Parser{lex: lex}
}

// Parse extracts a StructuredResume from raw text. It never fails: input
// that matches nothing yields a resume with empty skills, experience,
// projects and education, no summary and no personal info. Parsing is
// deterministic; identical input always yields an identical result.
func (p *Parser) Parse(rawText string) types.StructuredResume {
	lines := documentLines(rawText)
	sections := splitSections(lines)

	resume := types.StructuredResume{
		PersonalInfo: extractPersonalInfo(lines),
		Summary:      strings.Join(sections[sectionSummary], " "),
		Skills:       p.extractSkills(rawText),
		Experience:   p.extractExperience(sections[sectionExperience]),
		Projects:     p.extractProjects(sections[sectionProjects]),
		Education:    p.extractEducation(sections[sectionEducation]),
		RawText:      rawText,
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	return resume
}
