// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord represents the structured fields extracted from one resume.
// Skills are deduplicated case-insensitively and sorted lexicographically by
// their original-case form; Experience keeps one free-text entry per role or
// achievement. A record is created once per extraction call and never
// mutated afterwards.
type ResumeRecord struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
}

// HasSkills reports whether the record carries at least one skill.
func (r *ResumeRecord) HasSkills() bool {
	return r != nil && len(r.Skills) > 0
}
