package analyzer

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// headerZoneLines bounds how far into the document contact details are
// searched; anything below belongs to the sections.
const headerZoneLines = 10

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9_\-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[A-Za-z0-9_\-]+`)
)

// extractPersonalInfo pulls contact fields from the leading lines of the
// document. Each field is matched independently and at most once; when
// nothing is found the result is nil so the field is absent altogether.
func extractPersonalInfo(lines []string) *types.PersonalInfo {
	if len(lines) > headerZoneLines {
		lines = lines[:headerZoneLines]
	}
	block := strings.Join(lines, " ")

	info := &types.PersonalInfo{
		Email:    emailPattern.FindString(block),
		Phone:    strings.TrimSpace(phonePattern.FindString(block)),
		LinkedIn: linkedinPattern.FindString(block),
		GitHub:   githubPattern.FindString(block),
	}

	// A LinkedIn URL contains no "github.com", so the two cannot shadow
	// each other; only an empty result needs collapsing to nil.
	if info.Email == "" && info.Phone == "" && info.LinkedIn == "" && info.GitHub == "" {
		return nil
	}
	return info
}
