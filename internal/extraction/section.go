// Package extraction turns unstructured resume text into a structured
// ResumeRecord using heuristic section segmentation and multi-strategy
// field extraction with deterministic fallbacks at every step.
package extraction

import (
	"regexp"
	"strings"
)

// commonSections is the registry of section names used to bound a located
// section: the earliest occurrence of any other section's alias ends the
// current one.
var commonSections = []string{
	"education", "experience", "work experience", "skills", "projects",
	"certifications", "awards", "publications", "languages", "interests",
	"summary", "objective", "profile", "contact", "references", "volunteer",
	"extracurricular", "technical skills", "professional experience",
}

// Section is the located body of a named section, excluding its header.
type Section struct {
	Start int
	End   int
	Body  string
}

// LocateSection finds the body of the section named by any of the aliases.
// The earliest alias occurrence wins; ties between aliases starting at the
// same offset are broken by alias list order. The section runs to the
// earliest occurrence of any other common section name, else to end of
// text. Returns false when no alias occurs; a missing section is never an
// error.
func LocateSection(text string, aliases []string) (Section, bool) {
	lowered := lowerASCII(text)

	start, headerEnd := -1, -1
	for _, alias := range aliases {
		for _, re := range aliasPatterns(alias) {
			loc := re.FindStringIndex(lowered)
			if loc != nil && (start == -1 || loc[0] < start) {
				start = loc[0]
				headerEnd = loc[1]
			}
		}
	}
	if start == -1 {
		return Section{}, false
	}

	end := len(text)
	rest := lowered[headerEnd:]
	for _, name := range commonSections {
		if isAlias(name, aliases) {
			continue
		}
		for _, re := range aliasPatterns(name) {
			loc := re.FindStringIndex(rest)
			if loc != nil && headerEnd+loc[0] < end {
				end = headerEnd + loc[0]
			}
		}
	}

	return Section{
		Start: headerEnd,
		End:   end,
		Body:  strings.TrimSpace(text[headerEnd:end]),
	}, true
}

// aliasPatterns returns the match patterns for one section alias: the alias
// followed by a colon, then the alias as a whole word. Matching runs over
// ASCII-lowercased text, so case variants collapse into these two.
func aliasPatterns(alias string) []*regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToLower(alias))
	return []*regexp.Regexp{
		regexp.MustCompile(`\b` + quoted + `\s*:`),
		regexp.MustCompile(`\b` + quoted + `\b`),
	}
}

func isAlias(name string, aliases []string) bool {
	for _, alias := range aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// lowerASCII lowercases A-Z only, preserving byte offsets so that spans
// found in the lowered text index directly into the original.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
