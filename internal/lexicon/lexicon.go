// Package lexicon provides the fixed dictionaries the analysis engine is
// built on: the skill catalog, industry keywords, action verbs, stop words
// and the high-demand skill set. The dictionaries are wrapped in an
// immutable Lexicon value that is constructed once and injected into each
// component, so the engine carries no hidden module-level state and tests
// can substitute smaller dictionaries.
package lexicon

import (
	"sort"
	"strings"
)

// Lexicon is the read-only term catalog shared by the parser, the ATS
// scorer and the job matcher. It is safe for concurrent use once built.
type Lexicon struct {
	skills     map[string]struct{}
	multiWord  []string // lexicon entries containing a space, sorted
	industry   []string
	verbs      map[string]struct{}
	stops      map[string]struct{}
	highDemand []string
}

// Config holds the raw word lists for building a Lexicon. All entries are
// normalized to lower case during construction.
type Config struct {
	Skills           []string
	IndustryKeywords []string
	ActionVerbs      []string
	StopWords        []string
	HighDemandSkills []string
}

// New builds a Lexicon from the given word lists.
func New(cfg Config) *Lexicon {
	lex := &Lexicon{
		skills:     make(map[string]struct{}, len(cfg.Skills)),
		verbs:      make(map[string]struct{}, len(cfg.ActionVerbs)),
		stops:      make(map[string]struct{}, len(cfg.StopWords)),
		industry:   make([]string, 0, len(cfg.IndustryKeywords)),
		highDemand: make([]string, 0, len(cfg.HighDemandSkills)),
	}

	for _, s := range cfg.Skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, seen := lex.skills[s]; seen {
			continue
		}
		lex.skills[s] = struct{}{}
		if strings.Contains(s, " ") {
			lex.multiWord = append(lex.multiWord, s)
		}
	}
	sort.Strings(lex.multiWord)

	for _, k := range cfg.IndustryKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lex.industry = append(lex.industry, k)
		}
	}
	for _, v := range cfg.ActionVerbs {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			lex.verbs[v] = struct{}{}
		}
	}
	for _, w := range cfg.StopWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lex.stops[w] = struct{}{}
		}
	}
	for _, h := range cfg.HighDemandSkills {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			lex.highDemand = append(lex.highDemand, h)
		}
	}

	return lex
}

// Default returns the production Lexicon.
func Default() *Lexicon {
	return New(Config{
		Skills:           defaultSkills,
		IndustryKeywords: defaultIndustryKeywords,
		ActionVerbs:      defaultActionVerbs,
		StopWords:        defaultStopWords,
		HighDemandSkills: defaultHighDemandSkills,
	})
}

// HasSkill reports whether the lower-cased token is a known skill.
func (l *Lexicon) HasSkill(token string) bool {
	_, ok := l.skills[token]
	return ok
}

// MultiWordSkills returns the lexicon entries containing a space, in
// lexicographic order. Callers must not mutate the returned slice.
func (l *Lexicon) MultiWordSkills() []string {
	return l.multiWord
}

// SkillCount returns the number of entries in the skill catalog.
func (l *Lexicon) SkillCount() int {
	return len(l.skills)
}

// IndustryKeywords returns the fixed industry keyword list. Callers must
// not mutate the returned slice.
func (l *Lexicon) IndustryKeywords() []string {
	return l.industry
}

// IsActionVerb reports whether the lower-cased word is a recognized
// resume action verb.
func (l *Lexicon) IsActionVerb(word string) bool {
	_, ok := l.verbs[word]
	return ok
}

// IsStopWord reports whether the lower-cased word is a stop word for
// keyword tokenization.
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.stops[word]
	return ok
}

// HighDemandSkills returns the fixed high-demand skill set used for the
// ATS skill-match bonus. Callers must not mutate the returned slice.
func (l *Lexicon) HighDemandSkills() []string {
	return l.highDemand
}
