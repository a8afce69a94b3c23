package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
)

func TestExtractEducation_InstitutionWithDegreeLine(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractEducation([]string{
		"University of Somewhere",
		"Bachelor of Science in Computer Science",
		"Graduated with honors",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "University of Somewhere", entries[0].Institution)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
}

func TestExtractEducation_DegreeOnInstitutionLine(t *testing.T) {
	p := NewParser(lexicon.Default())

	// A line carrying a degree keyword opens its own entry when no
	// institution line precedes it.
	entries := p.extractEducation([]string{
		"Master of Science, Example Tech",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science, Example Tech", entries[0].Institution)
	assert.Empty(t, entries[0].Degree)
}

func TestExtractEducation_IgnoresUnrelatedLines(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractEducation([]string{
		"Relevant coursework in algorithms",
		"Dean's list 2019",
	})

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractEducation_MultipleInstitutions(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractEducation([]string{
		"State College",
		"B.S. in Mathematics",
		"Night Institute of Design",
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "B.S. in Mathematics", entries[0].Degree)
	assert.Equal(t, "Night Institute of Design", entries[1].Institution)
	assert.Empty(t, entries[1].Degree)
}
