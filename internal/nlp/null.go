package nlp

// Null is the no-capability Engine. Every method succeeds with an empty
// result, so consumers branch on emptiness instead of on engine presence.
type Null struct{}

// NewNull returns the no-capability engine.
func NewNull() *Null {
	return &Null{}
}

// Sentences returns no sentences.
func (*Null) Sentences(string) ([]string, error) { return nil, nil }

// Entities returns no entities.
func (*Null) Entities(string) ([]Entity, error) { return nil, nil }

// NounChunks returns no chunks.
func (*Null) NounChunks(string) ([]string, error) { return nil, nil }

// Tokens returns no tokens.
func (*Null) Tokens(string) ([]Token, error) { return nil, nil }
