package analyzer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var urlPattern = regexp.MustCompile(`https?://[^\s)>\]]+`)

const (
	minProjectNameLen = 4
	maxProjectNameLen = 49
	// A line with this many words or more reads as prose, not a name.
	projectSentenceWords = 8
)

// isProjectHeader classifies a line as a project name. Names are short,
// start with an uppercase letter, and carry no sentence punctuation.
func isProjectHeader(line string) bool {
	if len(line) < minProjectNameLen || len(line) > maxProjectNameLen {
		return false
	}
	first := []rune(line)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	if strings.ContainsAny(line, ".!?") {
		return false
	}
	return len(strings.Fields(line)) < projectSentenceWords
}

// extractProjects converts the projects section's lines into ordered
// entries. Same accumulation as extractExperience, except detail lines are
// space-joined into a single description and the first URL seen anywhere
// in the entry is kept.
func (p *Parser) extractProjects(lines []string) []types.ProjectEntry {
	entries := make([]types.ProjectEntry, 0)

	var current *types.ProjectEntry
	var details []string
	var techs map[string]struct{}

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(details, " ")
		current.Technologies = sortedSkills(techs)
		entries = append(entries, *current)
		current = nil
	}

	for _, line := range lines {
		if isProjectHeader(line) {
			flush()
			current = &types.ProjectEntry{Name: strings.TrimSpace(line)}
			details = nil
			techs = make(map[string]struct{})
			continue
		}

		if current != nil {
			details = append(details, strings.TrimSpace(line))
			unionSkills(techs, p.extractSkills(line))
			if current.URL == "" {
				current.URL = urlPattern.FindString(line)
			}
		}
	}
	flush()

	return entries
}
