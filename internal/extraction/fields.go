package extraction

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/classifier"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/schemas"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone patterns, tried in order; the first to match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),               // 123-456-7890
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}\b`),                 // (123) 456-7890
		regexp.MustCompile(`\b\d{4}[-.\s]?\d{3}[-.\s]?\d{3}\b`),               // 1234 567 890
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`), // +1-123-456-7890
	}

	// namePattern matches two consecutive capitalized words.
	namePattern = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)

	// nonNameTokens disqualify a top line from being the candidate's name.
	nonNameTokens = []string{"resume", "cv", "curriculum", "vitae", "profile"}
)

// nameScanLimit bounds the pattern-based name fallback to the top of the
// document.
const nameScanLimit = 500

// Extractor orchestrates field extraction from raw resume text. It holds
// only read-only collaborators and is safe for concurrent use.
type Extractor struct {
	engine nlp.Engine
	clf    *classifier.Classifier
	log    *zap.Logger
}

// New creates an Extractor. A nil engine is replaced by the no-capability
// engine; a nil classifier disables the classifier-backed strategies; a nil
// logger is replaced by a no-op logger.
func New(engine nlp.Engine, clf *classifier.Classifier, log *zap.Logger) *Extractor {
	if engine == nil {
		engine = nlp.NewNull()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{engine: engine, clf: clf, log: log}
}

// Extract builds a ResumeRecord from raw resume text. Extraction never
// fails: a field whose strategies all miss is left empty.
func (e *Extractor) Extract(text string) *types.ResumeRecord {
	record := &types.ResumeRecord{
		Name:       e.extractName(text),
		Email:      extractEmail(text),
		Phone:      extractPhone(text),
		Skills:     e.extractSkills(text),
		Experience: e.extractExperience(text),
	}

	e.log.Debug("extracted resume record",
		zap.String("name", record.Name),
		zap.Int("skills", len(record.Skills)),
		zap.Int("experience", len(record.Experience)))

	return record
}

// ExtractStructured builds a ResumeRecord from a JSON resume document.
// Structural problems (unparseable JSON, wrongly typed fields) surface as a
// *ValidationError; a missing skills field is logged, not failed.
func (e *Extractor) ExtractStructured(data []byte) (*types.ResumeRecord, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemas.Resume),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &ValidationError{Cause: err}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, &ValidationError{Problems: problems}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &ValidationError{Cause: err}
	}

	if record.Skills == nil {
		e.log.Warn("required field missing from JSON resume", zap.String("field", "skills"))
	}
	record.Skills = dedupeAndSort(record.Skills)

	return &record, nil
}

// extractName tries each name strategy in priority order; the first
// non-empty result wins.
func (e *Extractor) extractName(text string) string {
	strategies := []func(string) string{
		e.nameFromEntities,
		nameFromTopLines,
		nameFromPattern,
	}
	for _, strategy := range strategies {
		if name := strategy(text); name != "" {
			return name
		}
	}
	return ""
}

// nameFromEntities returns the first PERSON entity found by the NLP engine.
func (e *Extractor) nameFromEntities(text string) string {
	entities, err := e.engine.Entities(text)
	if err != nil {
		e.log.Debug("entity extraction failed for name", zap.Error(err))
		return ""
	}
	for _, entity := range entities {
		if entity.Label == nlp.LabelPerson {
			return entity.Text
		}
	}
	return ""
}

// nameFromTopLines scans the first five lines for one that looks like a
// name: at most 4 words, every word starting upper-case, and no
// resume-heading token.
func nameFromTopLines(text string) string {
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines) && i < 5; i++ {
		line := strings.TrimSpace(lines[i])
		words := strings.Fields(line)
		if line == "" || len(words) > 4 {
			continue
		}
		if !allStartUpper(words) {
			continue
		}
		if containsAnyFold(line, nonNameTokens) {
			continue
		}
		return line
	}
	return ""
}

// nameFromPattern matches two consecutive capitalized words near the top
// of the document.
func nameFromPattern(text string) string {
	head := text
	if len(head) > nameScanLimit {
		head = head[:nameScanLimit]
	}
	return namePattern.FindString(head)
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

func allStartUpper(words []string) bool {
	for _, word := range words {
		first := []rune(word)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

func containsAnyFold(s string, tokens []string) bool {
	lower := strings.ToLower(s)
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
