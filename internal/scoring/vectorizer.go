package scoring

import (
	"errors"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vectorizer limits.
const (
	maxFeatures = 5000 // vocabulary cap, kept by global term frequency
	maxDocRatio = 0.9  // terms in more than 90% of documents are dropped
	minTokenLen = 2    // single-character tokens carry no signal
)

// errEmptyVocabulary marks a degenerate vectorization: no usable terms
// survived filtering. Callers treat it as a zero-similarity result, never
// as a pipeline failure.
var errEmptyVocabulary = errors.New("vectorization produced an empty vocabulary")

// vectorizer builds weighted term-frequency vectors (term frequency
// adjusted for corpus-wide rarity) over a small corpus of normalized
// documents.
type vectorizer struct {
	ngramMax int
}

// newVectorizer creates a vectorizer producing n-grams from 1 to ngramMax.
func newVectorizer(ngramMax int) *vectorizer {
	return &vectorizer{ngramMax: ngramMax}
}

// vocabulary is the indexed term set of one corpus with per-term document
// frequencies.
type vocabulary struct {
	index map[string]int
	df    []int
	docs  int
}

// cosineSimilarity vectorizes the two documents and returns the cosine of
// the angle between their vectors, in [0, 1].
func (v *vectorizer) cosineSimilarity(docA, docB string) (float64, error) {
	docs := [][]string{v.terms(docA), v.terms(docB)}
	vocab := v.buildVocabulary(docs)
	if len(vocab.index) == 0 {
		return 0, errEmptyVocabulary
	}

	vecA := vocab.weightedVector(docs[0])
	vecB := vocab.weightedVector(docs[1])

	normA := floats.Norm(vecA, 2)
	normB := floats.Norm(vecB, 2)
	if normA == 0 || normB == 0 {
		return 0, errEmptyVocabulary
	}

	return floats.Dot(vecA, vecB) / (normA * normB), nil
}

// terms tokenizes a normalized document and expands it into n-grams with
// stop words removed.
func (v *vectorizer) terms(doc string) []string {
	words := make([]string, 0, 64)
	for _, word := range strings.Fields(doc) {
		if len(word) < minTokenLen || isStopWord(word) {
			continue
		}
		words = append(words, word)
	}

	terms := make([]string, 0, len(words)*v.ngramMax)
	for n := 1; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			terms = append(terms, strings.Join(words[i:i+n], " "))
		}
	}
	return terms
}

// termEntry tracks a term's document frequency and corpus-wide count.
type termEntry struct {
	term  string
	df    int
	count int
}

// buildVocabulary assigns vector indices to terms, dropping terms that
// appear in more than maxDocRatio of the documents and keeping at most
// maxFeatures terms by global frequency. The document-frequency ceiling
// only applies to corpora of more than two documents: with exactly two it
// would remove every shared term and force all similarities to zero.
func (v *vectorizer) buildVocabulary(docs [][]string) *vocabulary {
	entries := make(map[string]*termEntry)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			entry, ok := entries[term]
			if !ok {
				entry = &termEntry{term: term}
				entries[term] = entry
			}
			entry.count++
			if !seen[term] {
				seen[term] = true
				entry.df++
			}
		}
	}

	kept := make([]*termEntry, 0, len(entries))
	dfCeiling := int(maxDocRatio * float64(len(docs)))
	for _, entry := range entries {
		if len(docs) > 2 && entry.df > dfCeiling {
			continue
		}
		kept = append(kept, entry)
	}

	if len(kept) > maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if kept[i].count != kept[j].count {
				return kept[i].count > kept[j].count
			}
			return kept[i].term < kept[j].term
		})
		kept = kept[:maxFeatures]
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].term < kept[j].term })
	vocab := &vocabulary{
		index: make(map[string]int, len(kept)),
		df:    make([]int, len(kept)),
		docs:  len(docs),
	}
	for i, entry := range kept {
		vocab.index[entry.term] = i
		vocab.df[i] = entry.df
	}
	return vocab
}

// weightedVector builds the tf-idf vector for one document, with smoothed
// inverse document frequency so single-document terms stay eligible.
func (voc *vocabulary) weightedVector(doc []string) []float64 {
	counts := make(map[string]int, len(doc))
	for _, term := range doc {
		counts[term]++
	}

	vec := make([]float64, len(voc.index))
	for term, count := range counts {
		index, ok := voc.index[term]
		if !ok {
			continue
		}
		idf := math.Log(float64(1+voc.docs)/float64(1+voc.df[index])) + 1
		vec[index] = float64(count) * idf
	}
	return vec
}
