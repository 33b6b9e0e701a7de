package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected string
	}{
		{"Perfect score", 100, CategoryExcellent},
		{"Excellent lower bound", 85, CategoryExcellent},
		{"Just below excellent", 84, CategoryStrong},
		{"Strong lower bound", 70, CategoryStrong},
		{"Just below strong", 69, CategoryModerate},
		{"Moderate lower bound", 50, CategoryModerate},
		{"Just below moderate", 49, CategoryWeak},
		{"Weak lower bound", 30, CategoryWeak},
		{"Just below weak", 29, CategoryPoor},
		{"Zero score", 0, CategoryPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryForScore(tt.score))
		})
	}
}

func TestResumeRecordHasSkills(t *testing.T) {
	tests := []struct {
		name     string
		record   *ResumeRecord
		expected bool
	}{
		{"Nil record", nil, false},
		{"No skills", &ResumeRecord{Name: "Jane Doe"}, false},
		{"Empty skills slice", &ResumeRecord{Skills: []string{}}, false},
		{"One skill", &ResumeRecord{Skills: []string{"Python"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.HasSkills())
		})
	}
}
