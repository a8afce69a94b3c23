// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of skills displayed in summaries
	maxSkillsToShow = 8
)

// Printer handles formatted output for CLI mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:      %s\n", summarizeList(resume.Skills, maxSkillsToShow)))
	sb.WriteString(fmt.Sprintf("Experience:  %d entries\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:    %d entries\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Education:   %d entries", len(resume.Education)))
	if info := resume.PersonalInfo; info != nil && info.Email != "" {
		sb.WriteString(fmt.Sprintf("\nContact:     %s", info.Email))
	}

	p.printBox("Parsed Resume", sb.String())
}

// PrintBreakdown outputs the ATS score breakdown.
func (p *Printer) PrintBreakdown(breakdown types.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skill Match:          %3d\n", breakdown.SkillMatch))
	sb.WriteString(fmt.Sprintf("Project Strength:     %3d\n", breakdown.ProjectStrength))
	sb.WriteString(fmt.Sprintf("Experience Relevance: %3d\n", breakdown.ExperienceRelevance))
	sb.WriteString(fmt.Sprintf("Resume Structure:     %3d\n", breakdown.ResumeStructure))
	sb.WriteString(fmt.Sprintf("Keyword Density:      %3d\n", breakdown.KeywordDensity))
	sb.WriteString(fmt.Sprintf("Action Verbs:         %3d\n", breakdown.ActionVerbs))
	sb.WriteString(fmt.Sprintf("Total:                %3d", breakdown.Total))

	p.printBox("ATS Score", sb.String())
}

// PrintMatches outputs ranked match scores, best first.
func (p *Printer) PrintMatches(matches []types.MatchScore) {
	var sb strings.Builder
	for i, m := range matches {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%2d. %-24s score %3d", i+1, m.JobID, m.Score))
		if len(m.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("\n    missing: %s", summarizeList(m.MissingSkills, maxSkillsToShow)))
		}
	}
	if len(matches) == 0 {
		sb.WriteString("no matches")
	}

	p.printBox("Job Matches", sb.String())
}

// summarizeList joins up to limit items, appending a count of the rest.
func summarizeList(items []string, limit int) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}
