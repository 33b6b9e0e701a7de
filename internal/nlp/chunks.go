package nlp

import "strings"

// chunkNounPhrases groups a tagged token stream into noun-phrase chunks
// using a determiner/adjective/noun pattern. A chunk is a maximal run of
// DT/JJ*/NN* tokens that contains at least one noun.
func chunkNounPhrases(tokens []Token) []string {
	var chunks []string
	var current []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
		}
		current = current[:0]
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case isNounTag(tok.Tag):
			current = append(current, tok.Text)
			hasNoun = true
		case isChunkableTag(tok.Tag):
			current = append(current, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return chunks
}

func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isChunkableTag(tag string) bool {
	return tag == "DT" || strings.HasPrefix(tag, "JJ")
}
