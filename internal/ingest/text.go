// Package ingest normalizes the text handed to the analysis engine:
// resume text extracted upstream from PDFs, and job descriptions that may
// arrive as HTML.
package ingest

import (
	"regexp"
	"strings"
)

var (
	blankRunPattern   = regexp.MustCompile(`\n\n\n+`)
	innerSpacePattern = regexp.MustCompile(`[ \t]+`)
)

// CleanText normalizes line endings, collapses runs of spaces inside each
// line and reduces blank-line runs to at most one, while preserving the
// line structure the section splitter depends on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = innerSpacePattern.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
