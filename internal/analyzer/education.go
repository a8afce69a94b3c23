package analyzer

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	institutionPattern = regexp.MustCompile(`(?i)(university|college|institute|bachelor|master|phd|b\.s\.|m\.s\.)`)
	degreePattern      = regexp.MustCompile(`(?i)(bachelor|master|phd|b\.s\.|m\.s\.)`)
)

// extractEducation converts the education section's lines into ordered
// entries. A line carrying an institution keyword opens an entry; if the
// immediately following line reads as a degree it is consumed into the
// entry. Anything else is ignored.
func (p *Parser) extractEducation(lines []string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !institutionPattern.MatchString(line) {
			continue
		}

		entry := types.EducationEntry{Institution: strings.TrimSpace(line)}
		if i+1 < len(lines) && degreePattern.MatchString(lines[i+1]) {
			entry.Degree = strings.TrimSpace(lines[i+1])
			i++
		}
		entries = append(entries, entry)
	}

	return entries
}
