package scoring

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Final score weights: 50% skills match, 30% content match, 20% experience
// relevance.
const (
	skillsWeight     = 0.5
	contentWeight    = 0.3
	experienceWeight = 0.2
)

// Content match blending.
const (
	cosineWeight       = 0.7
	keywordWeight      = 0.3
	contentCurve       = 1.1 // moderate curve, capped at 100
	contentNgramMax    = 2
	experienceNgramMax = 1
)

// Engine computes ScoreReports. It holds only read-only collaborators and
// is safe for concurrent use; every call allocates its own report.
type Engine struct {
	engine nlp.Engine
	log    *zap.Logger
}

// New creates a scoring engine. A nil NLP engine is replaced by the
// no-capability engine; a nil logger by a no-op logger.
func New(engine nlp.Engine, log *zap.Logger) *Engine {
	if engine == nil {
		engine = nlp.NewNull()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{engine: engine, log: log}
}

// Score matches one resume record against one job description and returns
// the complete report. Recoverable computation failures contribute zero to
// their component; Score itself never fails.
func (e *Engine) Score(record *types.ResumeRecord, jobText string) *types.ScoreReport {
	resumeText := CleanText(strings.Join([]string{
		record.Name,
		record.Email,
		strings.Join(record.Skills, " "),
		strings.Join(record.Experience, " "),
	}, " "))
	jobNorm := CleanText(jobText)

	ctx := e.jobContext(jobNorm)
	matched := matchSkills(record.Skills, jobNorm, ctx)

	skillsScore := 0.0
	if len(matched) > 0 {
		total := 0.0
		for _, strength := range matched {
			total += strength
		}
		skillsScore = total / float64(len(matched)) * 100
	}

	coverage := 0.0
	if record.HasSkills() {
		coverage = float64(len(matched)) / float64(len(record.Skills)) * 100
	}

	contentMatch := e.contentMatch(resumeText, jobNorm)
	expRelevance := e.experienceRelevance(record.Experience, jobNorm)

	final := int(math.Round(skillsWeight*skillsScore + contentWeight*contentMatch + experienceWeight*expRelevance))
	final = clamp(final, 0, 100)

	return &types.ScoreReport{
		Score:         final,
		Category:      types.CategoryForScore(final),
		MatchedSkills: matched,
		Components: types.ScoreComponents{
			SkillsScore:         round1(skillsScore),
			ContentMatch:        round1(contentMatch),
			SkillCoverage:       round1(coverage),
			ExperienceRelevance: round1(expRelevance),
		},
	}
}

// jobContext extracts entity and noun-chunk spans from the job description
// for the per-skill context signal. Failures log and leave the context
// empty, which disables the signal.
func (e *Engine) jobContext(jobText string) *jobContext {
	ctx := &jobContext{}

	entities, err := e.engine.Entities(jobText)
	if err != nil {
		e.log.Warn("entity extraction failed for job description", zap.Error(err))
	}
	for _, entity := range entities {
		ctx.entities = append(ctx.entities, strings.ToLower(entity.Text))
	}

	chunks, err := e.engine.NounChunks(jobText)
	if err != nil {
		e.log.Warn("noun chunking failed for job description", zap.Error(err))
	}
	for _, chunk := range chunks {
		ctx.chunks = append(ctx.chunks, strings.ToLower(chunk))
	}

	return ctx
}

// contentMatch computes the vector-space similarity between the full
// resume text and the job text, optionally boosted by NLP-derived keyword
// overlap. Any vectorization failure yields 0.
func (e *Engine) contentMatch(resumeText, jobText string) float64 {
	resumeChunks := e.nounChunks(resumeText)
	jobChunks := e.nounChunks(jobText)

	// Extend both documents with their NLP-derived spans so shared
	// entities and phrases pull the vectors together.
	resumeDoc := extendWithSpans(resumeText, e.entitySpans(resumeText), resumeChunks)
	jobDoc := extendWithSpans(jobText, e.entitySpans(jobText), jobChunks)

	cosine, err := newVectorizer(contentNgramMax).cosineSimilarity(resumeDoc, jobDoc)
	if err != nil {
		e.log.Warn("content vectorization failed", zap.Error(err))
		return 0
	}
	score := cosine * 100 * cosineWeight

	if len(resumeChunks) > 0 && len(jobChunks) > 0 {
		score += keywordOverlap(resumeChunks, jobChunks) * keywordWeight
	}

	return math.Min(score*contentCurve, 100)
}

// experienceRelevance computes unigram vector similarity between the
// concatenated experience entries and the job text. Either side being
// empty yields 0.
func (e *Engine) experienceRelevance(experience []string, jobText string) float64 {
	expText := CleanText(strings.Join(experience, " "))
	if expText == "" || jobText == "" {
		return 0
	}

	cosine, err := newVectorizer(experienceNgramMax).cosineSimilarity(expText, jobText)
	if err != nil {
		e.log.Warn("experience vectorization failed", zap.Error(err))
		return 0
	}
	return cosine * 100
}

// keywordOverlap scores the distinct noun-chunk overlap between the two
// documents as a percentage of the job's chunk list, repeats included, so
// a repeated job phrase dilutes rather than inflates the bonus.
func keywordOverlap(resumeChunks, jobChunks []string) float64 {
	jobSet := make(map[string]bool, len(jobChunks))
	for _, chunk := range jobChunks {
		jobSet[chunk] = true
	}

	overlap := make(map[string]bool)
	for _, chunk := range resumeChunks {
		if jobSet[chunk] {
			overlap[chunk] = true
		}
	}
	if len(overlap) == 0 {
		return 0
	}

	return math.Min(float64(len(overlap))/float64(len(jobChunks))*100, 100)
}

func (e *Engine) nounChunks(text string) []string {
	chunks, err := e.engine.NounChunks(text)
	if err != nil {
		e.log.Warn("noun chunking failed", zap.Error(err))
		return nil
	}
	lowered := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		lowered = append(lowered, strings.ToLower(chunk))
	}
	return lowered
}

func (e *Engine) entitySpans(text string) []string {
	entities, err := e.engine.Entities(text)
	if err != nil {
		e.log.Warn("entity extraction failed", zap.Error(err))
		return nil
	}
	spans := make([]string, 0, len(entities))
	for _, entity := range entities {
		spans = append(spans, strings.ToLower(entity.Text))
	}
	return spans
}

func extendWithSpans(doc string, entities, chunks []string) string {
	if len(entities) == 0 && len(chunks) == 0 {
		return doc
	}
	parts := make([]string, 0, 1+len(entities)+len(chunks))
	parts = append(parts, doc)
	parts = append(parts, entities...)
	parts = append(parts, chunks...)
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
