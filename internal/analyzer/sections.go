// Package analyzer turns raw resume text into a StructuredResume. The
// parser runs a fixed pipeline: section splitting, per-section entry
// extraction, skill extraction and personal-info extraction. It performs
// no I/O and never fails; unparseable input degrades to an empty
// StructuredResume.
package analyzer

import "strings"

// Canonical section names produced by the splitter.
const (
	sectionSummary        = "summary"
	sectionSkills         = "skills"
	sectionExperience     = "experience"
	sectionProjects       = "projects"
	sectionEducation      = "education"
	sectionCertifications = "certifications"
	sectionLanguages      = "languages"
)

// headerAlias maps a header-line prefix to its canonical section. Aliases
// are tested in order; the longer variants ("work experience") are covered
// by their shorter prefix in the same group.
type headerAlias struct {
	canonical string
	prefixes  []string
}

var headerAliases = []headerAlias{
	{sectionSummary, []string{"summary", "profile", "about"}},
	{sectionSkills, []string{"skills", "technologies", "tech stack"}},
	{sectionExperience, []string{"experience", "work experience", "employment"}},
	{sectionProjects, []string{"projects", "personal projects"}},
	{sectionEducation, []string{"education", "academic", "qualifications"}},
	{sectionCertifications, []string{"certifications", "certificates"}},
	{sectionLanguages, []string{"languages"}},
}

// matchSectionHeader reports the canonical section a line opens, or "" if
// the line is not a section header. Matching is a case-insensitive prefix
// test on the trimmed line.
func matchSectionHeader(line string) string {
	normalized := strings.ToLower(strings.TrimSpace(line))
	normalized = strings.TrimRight(normalized, ":")

	for _, alias := range headerAliases {
		for _, prefix := range alias.prefixes {
			if strings.HasPrefix(normalized, prefix) {
				return alias.canonical
			}
		}
	}
	return ""
}

// splitSections partitions the resume's non-blank lines into labeled
// sections. The splitter is a two-state accumulator: outside any section
// (lines are dropped here and left to the personal-info extractor) or
// inside the current section, where every non-header line is appended.
// Re-encountering a header resets that section's buffer, so only the last
// occurrence's lines survive.
func splitSections(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := "" // "" means no section open yet

	for _, line := range lines {
		if name := matchSectionHeader(line); name != "" {
			current = name
			sections[current] = []string{}
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], line)
		}
	}

	return sections
}

// documentLines normalizes raw text into the ordered sequence of non-blank
// trimmed lines every extractor operates on.
func documentLines(rawText string) []string {
	rawText = strings.ReplaceAll(rawText, "\r\n", "\n")
	rawText = strings.ReplaceAll(rawText, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
