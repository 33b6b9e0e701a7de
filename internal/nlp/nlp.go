// Package nlp defines the optional linguistic capability consumed by the
// extraction and scoring pipeline. The pipeline never implements NLP itself;
// it talks to an Engine and every caller has a fallback for when the engine
// is the Null implementation or returns an error.
package nlp

// Label is a coarse named-entity type.
type Label string

// Coarse entity labels understood by the pipeline.
const (
	LabelPerson       Label = "PERSON"
	LabelOrganization Label = "ORGANIZATION"
	LabelProduct      Label = "PRODUCT"
	LabelLocation     Label = "LOCATION"
	LabelOther        Label = "OTHER"
)

// Entity is a named-entity span with its coarse label.
type Entity struct {
	Text  string
	Label Label
}

// Token is a single token with its part-of-speech tag (Penn Treebank).
type Token struct {
	Text string
	Tag  string
}

// IsVerb reports whether the token carries a verb part-of-speech tag.
func (t Token) IsVerb() bool {
	return len(t.Tag) >= 2 && t.Tag[:2] == "VB"
}

// Engine is the narrow interface over a linguistic engine. Implementations
// must be safe for concurrent use.
type Engine interface {
	// Sentences segments text into sentences.
	Sentences(text string) ([]string, error)
	// Entities returns named-entity spans with coarse labels.
	Entities(text string) ([]Entity, error)
	// NounChunks returns noun-phrase chunk spans.
	NounChunks(text string) ([]string, error)
	// Tokens returns per-token part-of-speech tags.
	Tokens(text string) ([]Token, error)
}
