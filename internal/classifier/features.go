// Package classifier provides the trained binary skill classifier: given a
// short text span, decide whether it is a skill mention. The classifier is
// optional; without a loaded model every span is accepted so that candidate
// skills are never silently dropped.
package classifier

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// featureCount is the length of the feature vector. The order of features is
// fixed and shared between training and inference.
const featureCount = 14

// technicalAcronyms are short technical terms whose presence in a span is a
// strong skill signal.
var technicalAcronyms = []string{
	"api", "ui", "ux", "css", "html", "js", "db", "sql", "nosql",
	"aws", "ml", "ai", "ci", "cd", "qa", "oop", "mvc", "rest",
}

// FeatureNames returns the feature names in vector order.
func FeatureNames() []string {
	return []string{
		"length", "word_count", "has_digits", "capitalized", "all_caps",
		"contains_slash", "contains_plus", "contains_hyphen", "contains_period",
		"starts_with_verb", "has_technical_term", "is_entity", "is_org_entity",
		"is_product_entity",
	}
}

// extractFeatures builds the feature vector for one span. Linguistic
// features come from the NLP engine; when the engine fails or yields
// nothing they stay at their zero defaults rather than aborting extraction.
func extractFeatures(span string, engine nlp.Engine) []float64 {
	span = strings.TrimSpace(span)
	features := make([]float64, featureCount)

	features[0] = float64(len(span))
	features[1] = float64(len(strings.Fields(span)))
	features[2] = boolFeature(strings.ContainsFunc(span, unicode.IsDigit))
	features[3] = boolFeature(startsCapitalized(span))
	features[4] = boolFeature(isAllCaps(span))
	features[5] = boolFeature(strings.Contains(span, "/"))
	features[6] = boolFeature(strings.Contains(span, "+"))
	features[7] = boolFeature(strings.Contains(span, "-") || strings.Contains(span, "–"))
	features[8] = boolFeature(strings.Contains(span, "."))

	lower := strings.ToLower(span)
	for _, term := range technicalAcronyms {
		if strings.Contains(lower, term) {
			features[10] = 1
			break
		}
	}

	if engine == nil {
		return features
	}

	if tokens, err := engine.Tokens(span); err == nil && len(tokens) > 0 {
		features[9] = boolFeature(tokens[0].IsVerb())
	}
	if entities, err := engine.Entities(span); err == nil && len(entities) > 0 {
		features[11] = 1
		features[12] = boolFeature(entities[0].Label == nlp.LabelOrganization)
		features[13] = boolFeature(entities[0].Label == nlp.LabelProduct)
	}

	return features
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func startsCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// isAllCaps reports whether the span contains at least one cased character
// and every cased character is upper-case.
func isAllCaps(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
