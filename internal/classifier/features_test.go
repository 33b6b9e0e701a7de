package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

func TestFeatureNames(t *testing.T) {
	names := FeatureNames()
	assert.Len(t, names, featureCount)
	assert.Equal(t, "length", names[0])
	assert.Equal(t, "is_product_entity", names[featureCount-1])
}

func TestExtractFeatures(t *testing.T) {
	engine := nlp.NewNull()

	tests := []struct {
		name     string
		span     string
		expected []float64
	}{
		{
			name: "Versioned language",
			span: "Python3",
			// length, words, digits, capitalized, all caps, slash, plus,
			// hyphen, period, verb, technical, entity, org, product
			expected: []float64{7, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "Slashed methodology",
			span:     "CI/CD",
			expected: []float64{5, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0},
		},
		{
			name:     "Punctuated language",
			span:     "C++",
			expected: []float64{3, 1, 0, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "Dotted framework",
			span:     "Node.js",
			expected: []float64{7, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0},
		},
		{
			name:     "Lower-case phrase",
			span:     "worked on things",
			expected: []float64{16, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "Surrounding whitespace trimmed",
			span:     "  Go-lang  ",
			expected: []float64{7, 1, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractFeatures(tt.span, engine))
		})
	}
}

func TestExtractFeaturesNilEngine(t *testing.T) {
	features := extractFeatures("Python", nil)
	assert.Len(t, features, featureCount)
	// Linguistic features stay at zero without an engine.
	assert.Zero(t, features[9])
	assert.Zero(t, features[11])
}
