package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		aliases  []string
		found    bool
		wantBody string
	}{
		{
			name:     "Section bounded by next section",
			text:     "Skills: Python and Go\nEducation: BS in CS",
			aliases:  []string{"skills"},
			found:    true,
			wantBody: "Python and Go",
		},
		{
			name:     "Section runs to end of text",
			text:     "Summary\nA person.\nSkills: Python, Go",
			aliases:  []string{"skills"},
			found:    true,
			wantBody: "Python, Go",
		},
		{
			name:     "Case-insensitive header",
			text:     "SKILLS\nPython\nEDUCATION\nBS",
			aliases:  []string{"skills"},
			found:    true,
			wantBody: "Python",
		},
		{
			name:     "First alias occurrence wins",
			text:     "Technical Skills: Go\nWork Experience: things",
			aliases:  []string{"skills", "technical skills"},
			found:    true,
			wantBody: "Go",
		},
		{
			name:    "Missing section",
			text:    "Education: BS in CS",
			aliases: []string{"skills", "technical skills"},
			found:   false,
		},
		{
			name:    "Empty text",
			text:    "",
			aliases: []string{"skills"},
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, found := LocateSection(tt.text, tt.aliases)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.wantBody, section.Body)
			}
		})
	}
}

func TestLocateSectionOffsets(t *testing.T) {
	text := "Intro text\nSkills: Python\nEducation: BS"
	section, found := LocateSection(text, []string{"skills"})
	require.True(t, found)

	// Body is the original-case text between header end and next section.
	assert.Equal(t, "Python", section.Body)
	assert.Equal(t, section.Body, strings.TrimSpace(text[section.Start:section.End]))
}
