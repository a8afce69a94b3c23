// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// StructuredResume is the normalized, section-decomposed representation
// produced from raw resume text. All fields are plain values; a
// StructuredResume is computed fresh per request and never mutated after
// construction.
type StructuredResume struct {
	PersonalInfo *PersonalInfo     `json:"personal_info,omitempty"`
	Summary      string            `json:"summary,omitempty"`
	Skills       []string          `json:"skills"`
	Experience   []ExperienceEntry `json:"experience"`
	Projects     []ProjectEntry    `json:"projects"`
	Education    []EducationEntry  `json:"education"`
	RawText      string            `json:"raw_text,omitempty"`
}

// PersonalInfo holds contact fields extracted from the top of the document.
// Fields not found in the source text are left empty and omitted from JSON.
type PersonalInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry represents one job held, as extracted from the
// experience section.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Title        string   `json:"title,omitempty"`
	StartDate    string   `json:"start_date,omitempty"` // free-form, e.g. "Jan 2022"
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
}

// ProjectEntry represents one project built, as extracted from the
// projects section.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// EducationEntry represents one education credential.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
}
