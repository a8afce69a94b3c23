package ingest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTagPattern = regexp.MustCompile(`<\s*[a-zA-Z!/][^>]*>`)

// LooksLikeHTML reports whether the content appears to be HTML markup
// rather than plain text.
func LooksLikeHTML(content string) bool {
	return htmlTagPattern.MatchString(content)
}

// StripHTML extracts the visible text from HTML markup, dropping script
// and style content and keeping block boundaries as line breaks so the
// result still reads line-by-line.
func StripHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &HTMLParseError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, div, br, tr").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-level blocks contribute text; containers would
		// duplicate their children's text.
		if s.Children().Filter("p, li, div, tr").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Markup without block structure; fall back to the flat text.
		text = doc.Text()
	}

	return CleanText(text), nil
}

// Normalize prepares arbitrary posting or resume content for the engine:
// HTML is stripped to text, everything is cleaned. Malformed HTML falls
// back to cleaning the raw content rather than failing.
func Normalize(content string) string {
	if LooksLikeHTML(content) {
		if text, err := StripHTML(content); err == nil {
			return text
		}
	}
	return CleanText(content)
}
