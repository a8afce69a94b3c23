package analyzer

import (
	"sort"
	"strings"
)

// tokenRune reports whether r may appear inside a skill token. '.', '#'
// and '+' are kept so tokens like "node.js", "c#" and "c++" survive.
func tokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '#' || r == '+':
		return true
	}
	return false
}

// extractSkills returns the lexicon skills found in an arbitrary text
// fragment, deduplicated and sorted lexicographically. Single-word entries
// are matched token-wise after lower-casing and stripping punctuation;
// multi-word entries are matched as raw substrings of the lowered fragment.
func (p *Parser) extractSkills(fragment string) []string {
	lowered := strings.ToLower(fragment)

	found := make(map[string]struct{})
	for _, token := range strings.FieldsFunc(lowered, func(r rune) bool { return !tokenRune(r) }) {
		// A sentence-final dot is separator noise, not part of the token.
		token = strings.TrimRight(token, ".")
		if token == "" {
			continue
		}
		if p.lex.HasSkill(token) {
			found[token] = struct{}{}
		}
	}

	for _, entry := range p.lex.MultiWordSkills() {
		if strings.Contains(lowered, entry) {
			found[entry] = struct{}{}
		}
	}

	if len(found) == 0 {
		return nil
	}
	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// unionSkills merges newly found skills into an accumulator set.
func unionSkills(into map[string]struct{}, skills []string) {
	for _, s := range skills {
		into[s] = struct{}{}
	}
}

// sortedSkills flattens a skill set into a deterministic slice. The empty
// set yields an empty (non-nil) slice so JSON output stays "[]".
func sortedSkills(set map[string]struct{}) []string {
	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}
