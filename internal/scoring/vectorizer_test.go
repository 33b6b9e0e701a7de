package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerms(t *testing.T) {
	v := newVectorizer(2)

	tests := []struct {
		name     string
		doc      string
		expected []string
	}{
		{
			name: "Unigrams and bigrams",
			doc:  "machine learning models",
			expected: []string{
				"machine", "learning", "models",
				"machine learning", "learning models",
			},
		},
		{
			name: "Stop words and short tokens removed",
			doc:  "a x developer on the team",
			expected: []string{
				"developer", "team",
				"developer team",
			},
		},
		{
			name:     "Empty document",
			doc:      "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.terms(tt.doc))
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	v := newVectorizer(2)

	t.Run("Identical documents", func(t *testing.T) {
		sim, err := v.cosineSimilarity(
			"distributed systems engineer with kafka experience",
			"distributed systems engineer with kafka experience",
		)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sim, 1e-9)
	})

	t.Run("Disjoint documents", func(t *testing.T) {
		sim, err := v.cosineSimilarity("alpha beta gamma", "delta epsilon zeta")
		require.NoError(t, err)
		assert.Zero(t, sim)
	})

	t.Run("Partial overlap lands in between", func(t *testing.T) {
		sim, err := v.cosineSimilarity(
			"python developer backend services",
			"python developer frontend applications",
		)
		require.NoError(t, err)
		assert.Greater(t, sim, 0.0)
		assert.Less(t, sim, 1.0)
	})

	t.Run("Empty document", func(t *testing.T) {
		_, err := v.cosineSimilarity("", "python developer")
		assert.ErrorIs(t, err, errEmptyVocabulary)
	})

	t.Run("Both empty", func(t *testing.T) {
		_, err := v.cosineSimilarity("", "")
		assert.ErrorIs(t, err, errEmptyVocabulary)
	})

	t.Run("Symmetric", func(t *testing.T) {
		a, err := v.cosineSimilarity("go services and grpc transport", "grpc transport layer")
		require.NoError(t, err)
		b, err := v.cosineSimilarity("grpc transport layer", "go services and grpc transport")
		require.NoError(t, err)
		assert.InDelta(t, a, b, 1e-12)
	})
}
