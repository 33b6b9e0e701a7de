package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintResumeRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeRecord(&types.ResumeRecord{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "555-123-4567",
		Skills:     []string{"Docker", "Go", "Kubernetes", "PostgreSQL", "Python", "Terraform", "Vim"},
		Experience: []string{"Built things", "Shipped things"},
	})

	out := buf.String()
	assert.Contains(t, out, "Extracted Resume")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Skills (7):")
	assert.Contains(t, out, "- Docker")
	assert.Contains(t, out, "... and 2 more", "long skill lists should be truncated")
	assert.Contains(t, out, "Experience entries: 2")
}

func TestPrintResumeRecordNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeRecord(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreReport{
		Score:    87,
		Category: types.CategoryExcellent,
		MatchedSkills: types.SkillMatch{
			"Python": 0.95,
			"Docker": 0.6,
		},
		Components: types.ScoreComponents{
			SkillsScore:         77.5,
			ContentMatch:        91.0,
			SkillCoverage:       100.0,
			ExperienceRelevance: 80.3,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Match Report")
	assert.Contains(t, out, "87 / 100")
	assert.Contains(t, out, "Excellent Match")
	assert.Contains(t, out, "Matched skills (2):")
	assert.Contains(t, out, "Docker (0.60)")
	assert.Contains(t, out, "Python (0.95)")
}

func TestPrintScoreReportNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(nil)
	assert.Empty(t, buf.String())
}
