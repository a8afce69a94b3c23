package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesWhitespace(t *testing.T) {
	in := "First line   with  gaps\t\r\nSecond line  \r\n\r\n\r\n\r\nThird line"

	out := CleanText(in)

	assert.Equal(t, "First line with gaps\nSecond line\n\nThird line", out)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>We are hiring</p>"))
	assert.True(t, LooksLikeHTML("<!DOCTYPE html><html></html>"))
	assert.False(t, LooksLikeHTML("We are hiring a Go developer"))
	assert.False(t, LooksLikeHTML("salary range 100 < x < 200"))
}

func TestStripHTML_KeepsBlockBoundaries(t *testing.T) {
	html := `<html><body>
		<h1>Backend Engineer</h1>
		<p>Build the billing platform.</p>
		<ul><li>Go</li><li>PostgreSQL</li></ul>
		<script>tracker()</script>
	</body></html>`

	out, err := StripHTML(html)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nBuild the billing platform.\nGo\nPostgreSQL", out)
	assert.NotContains(t, out, "tracker")
}

func TestStripHTML_FallsBackToFlatText(t *testing.T) {
	out, err := StripHTML("<span>just an inline fragment</span>")

	require.NoError(t, err)
	assert.Equal(t, "just an inline fragment", out)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Hiring now", Normalize("<p>Hiring   now</p>"))
	assert.Equal(t, "plain text stays", Normalize("plain  text  stays"))
}
