package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty input", "", ""},
		{"CRLF to LF", "line one\r\nline two", "line one\nline two"},
		{"Bare CR to LF", "line one\rline two", "line one\nline two"},
		{"Trailing whitespace trimmed", "line one   \t\nline two", "line one\nline two"},
		{"Space runs collapsed", "too   many    spaces", "too many spaces"},
		{"Indentation preserved", "Role\n  detail   line", "Role\n  detail line"},
		{"Blank runs shrink to one", "a\n\n\n\n\nb", "a\n\nb"},
		{"Whitespace-only lines blanked", "a\n   \t\nb", "a\n\nb"},
		{"Edges trimmed", "\n\nresume body\n\n", "resume body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n\r\n\r\nSkills:   Python\n"), 0644))

	content, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSkills: Python", content)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
