package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Prose is an Engine backed by the prose library. Documents are built per
// call; the engine itself holds no mutable state and is safe for concurrent
// use.
type Prose struct{}

// NewProse returns a prose-backed engine.
func NewProse() *Prose {
	return &Prose{}
}

// proseLabels maps prose NER labels to the coarse labels of the port.
var proseLabels = map[string]Label{
	"PERSON":  LabelPerson,
	"ORG":     LabelOrganization,
	"PRODUCT": LabelProduct,
	"GPE":     LabelLocation,
	"LOC":     LabelLocation,
}

// Sentences segments text into sentences.
func (*Prose) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to segment sentences: %w", err)
	}

	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out, nil
}

// Entities returns named-entity spans with coarse labels.
func (*Prose) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract entities: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		label, ok := proseLabels[e.Label]
		if !ok {
			label = LabelOther
		}
		out = append(out, Entity{Text: e.Text, Label: label})
	}
	return out, nil
}

// NounChunks returns noun-phrase chunks derived from the POS tag stream.
// prose exposes no chunker, so chunking runs over its tagger output.
func (p *Prose) NounChunks(text string) ([]string, error) {
	tokens, err := p.Tokens(text)
	if err != nil {
		return nil, err
	}
	return chunkNounPhrases(tokens), nil
}

// Tokens returns per-token part-of-speech tags.
func (*Prose) Tokens(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag tokens: %w", err)
	}

	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, Token{Text: t.Text, Tag: t.Tag})
	}
	return out, nil
}
