package analyzer

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	companyKeywordPattern = regexp.MustCompile(`(?i)\b(company|inc|llc|technologies|software|systems)\b`)
	roleKeywordPattern    = regexp.MustCompile(`(?i)\b(developer|engineer|architect|lead|manager)\b`)
	startDatePattern      = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`)
)

// isExperienceHeader classifies a line as the start of a new experience
// entry. A header either carries a company-like keyword, a "company | title"
// delimiter, or a role keyword.
func isExperienceHeader(line string) bool {
	return companyKeywordPattern.MatchString(line) ||
		strings.Contains(line, "|") ||
		roleKeywordPattern.MatchString(line)
}

// extractExperience converts the experience section's lines into ordered
// entries. The extractor is a two-state accumulator (no entry open /
// building the current entry): header lines flush the previous entry and
// open a new one, detail lines accumulate into the open entry's bullets
// and technology set.
func (p *Parser) extractExperience(lines []string) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)

	var current *types.ExperienceEntry
	var techs map[string]struct{}

	flush := func() {
		if current == nil {
			return
		}
		if current.Company != "" {
			current.Technologies = sortedSkills(techs)
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if isExperienceHeader(line) {
			flush()

			company, title := line, ""
			if idx := strings.Index(line, "|"); idx >= 0 {
				company = strings.TrimSpace(line[:idx])
				title = strings.TrimSpace(line[idx+1:])
			}

			current = &types.ExperienceEntry{
				Company:     strings.TrimSpace(company),
				Title:       title,
				StartDate:   startDatePattern.FindString(line),
				Description: []string{},
			}
			techs = make(map[string]struct{})
			continue
		}

		if current != nil {
			current.Description = append(current.Description, strings.TrimSpace(line))
			unionSkills(techs, p.extractSkills(line))
		}
	}
	flush()

	return entries
}
