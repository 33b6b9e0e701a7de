package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	skills := All()

	assert.NotEmpty(t, skills)
	assert.True(t, sort.StringsAreSorted(skills), "catalog should be sorted")

	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		assert.False(t, seen[skill], "catalog should not contain duplicate %q", skill)
		seen[skill] = true
	}

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "C++")
	assert.Contains(t, skills, "Project Management")
}

func TestCategories(t *testing.T) {
	names := Categories()

	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "programming")
	assert.Contains(t, names, "soft_skills")
}

func TestSkills(t *testing.T) {
	assert.Contains(t, Skills("programming"), "Go")
	assert.Contains(t, Skills("databases"), "PostgreSQL")
	assert.Nil(t, Skills("unknown_category"))
}
