package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

func TestExtractExperienceMissingSection(t *testing.T) {
	e := New(nlp.NewNull(), nil, nil)
	assert.Empty(t, e.extractExperience("Skills: Python\nEducation: BS"))
}

func TestSentenceExperience(t *testing.T) {
	engine := &stubEngine{sentences: []string{
		"Developed a payment processing system used by millions of customers.",
		"Led a team of four engineers through two major releases.",
		"Enjoys music.",            // no indicator, too short
		"Managed things.",          // indicator but too short
		"Attended a few meetings.", // no indicator
	}}
	e := New(engine, nil, nil)

	entries := e.extractExperience("Experience:\nwhatever the engine sees")

	assert.Equal(t, []string{
		"Developed a payment processing system used by millions of customers.",
		"Led a team of four engineers through two major releases.",
	}, entries)
}

func TestLineExperience(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name: "Role lines open entries, detail lines extend them",
			body: "Software Engineer at Acme\nBuilt internal tools\nShipped v2\n" +
				"Data Analyst at Beta\nAnalyzed funnels",
			expected: []string{
				"Software Engineer at Acme Built internal tools Shipped v2",
				"Data Analyst at Beta Analyzed funnels",
			},
		},
		{
			name:     "Lines before the first role line are dropped",
			body:     "A summary line\nSoftware Engineer at Acme\nBuilt tools",
			expected: []string{"Software Engineer at Acme Built tools"},
		},
		{
			name:     "Lower-case role line does not open an entry",
			body:     "software engineer at acme\nbuilt tools",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lineExperience(tt.body))
		})
	}
}

func TestBulletExperience(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "Bulleted entries",
			body:     "Highlights\n• Built a data pipeline\n• Cut costs by 30%",
			expected: []string{"Built a data pipeline", "Cut costs by 30%"},
		},
		{
			name:     "No bullets",
			body:     "just prose here",
			expected: nil,
		},
		{
			name:     "Empty segments dropped",
			body:     "•\n• Shipped it •  ",
			expected: []string{"Shipped it"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bulletExperience(tt.body))
		})
	}
}

func TestExtractExperienceBulletFallback(t *testing.T) {
	e := New(nlp.NewNull(), nil, nil)

	text := "Experience:\nwhat I worked on\n• built a scraper\n• maintained CI"
	entries := e.extractExperience(text)

	assert.Equal(t, []string{"built a scraper", "maintained CI"}, entries)
}
