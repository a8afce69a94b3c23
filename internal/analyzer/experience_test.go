package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
)

func TestIsExperienceHeader(t *testing.T) {
	assert.True(t, isExperienceHeader("Acme Inc"))
	assert.True(t, isExperienceHeader("Globex | Backend Role"))
	assert.True(t, isExperienceHeader("Senior Software Engineer"))
	assert.False(t, isExperienceHeader("Shipped the billing pipeline"))
	assert.False(t, isExperienceHeader("Improved conversion across three quarters"))
}

func TestExtractExperience_SplitsCompanyAndTitle(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractExperience([]string{
		"Acme Technologies | Senior Software Engineer",
		"- Shipped a billing pipeline in Go",
		"- Cut processing cost by 40%",
		"Globex | Backend Developer",
		"- Maintained Python batch jobs",
	})

	require.Len(t, entries, 2)

	assert.Equal(t, "Acme Technologies", entries[0].Company)
	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Equal(t, []string{
		"- Shipped a billing pipeline in Go",
		"- Cut processing cost by 40%",
	}, entries[0].Description)
	assert.Equal(t, []string{"go"}, entries[0].Technologies)

	assert.Equal(t, "Globex", entries[1].Company)
	assert.Equal(t, "Backend Developer", entries[1].Title)
	assert.Equal(t, []string{"python"}, entries[1].Technologies)
}

func TestExtractExperience_HeaderWithoutPipe(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractExperience([]string{
		"Initech Systems",
		"- Ran the nightly ledger close",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Initech Systems", entries[0].Company)
	assert.Empty(t, entries[0].Title)
}

func TestExtractExperience_StartDateFromHeaderLine(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractExperience([]string{
		"Acme Inc | Platform Engineer, March 2021",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "March 2021", entries[0].StartDate)
}

func TestExtractExperience_EmptySection(t *testing.T) {
	p := NewParser(lexicon.Default())

	entries := p.extractExperience(nil)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
