package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Per-skill signal weights and levels.
const (
	exactFrequencyWeight = 0.7
	exactPositionWeight  = 0.3
	frequencyCap         = 3.0 // occurrences at which frequency saturates

	proximityScale = 100.0 // character distance at which proximity halves

	contextEntityScore  = 0.8
	contextChunkScore   = 0.6
	contextPartialScore = 0.4
	// contextPartialMargin is how much longer a span must be than a skill
	// to count as a partial containment match.
	contextPartialMargin = 3
	// contextMinSkillLen keeps very short skill names out of the context
	// signal, where bare substring containment would match inside
	// unrelated words ("R" in "research").
	contextMinSkillLen = 3
)

// jobContext is the NLP-derived view of the job description shared by all
// per-skill context checks, lowercased for containment tests.
type jobContext struct {
	entities []string
	chunks   []string
}

func (c *jobContext) empty() bool {
	return len(c.entities) == 0 && len(c.chunks) == 0
}

// matchSkills computes the match strength for every resume skill against
// the normalized job text. Only skills with positive strength appear in
// the result.
func matchSkills(skills []string, jobText string, ctx *jobContext) types.SkillMatch {
	matched := make(types.SkillMatch)
	for _, skill := range skills {
		strength := skillStrength(strings.ToLower(skill), jobText, ctx)
		if strength > 0 {
			matched[skill] = strength
		}
	}
	return matched
}

// skillStrength combines the exact, proximity, and context signals for one
// lowercased skill, taking the maximum and rounding to 2 decimals.
func skillStrength(skill, jobText string, ctx *jobContext) float64 {
	exact := exactSignal(skill, jobText)

	proximity := 0.0
	if exact == 0 && strings.Contains(skill, " ") {
		proximity = proximitySignal(skill, jobText)
	}

	context := 0.0
	if exact == 0 && proximity == 0 {
		context = contextSignal(skill, ctx)
	}

	return round2(math.Max(exact, math.Max(proximity, context)))
}

// exactSignal scores verbatim occurrences by frequency and first position.
// More mentions and earlier mentions both indicate importance.
func exactSignal(skill, jobText string) float64 {
	first := strings.Index(jobText, skill)
	if first < 0 || len(jobText) == 0 {
		return 0
	}

	frequency := float64(strings.Count(jobText, skill))
	frequencyScore := math.Min(frequency/frequencyCap, 1.0)
	positionScore := 1.0 - float64(first)/float64(len(jobText))

	return exactFrequencyWeight*frequencyScore + exactPositionWeight*positionScore
}

// proximitySignal scores a multi-word skill whose constituent words all
// appear in the job text, by how close together they sit.
func proximitySignal(skill, jobText string) float64 {
	words := strings.Fields(skill)
	positions := make([]int, 0, len(words))
	for _, word := range words {
		pos := strings.Index(jobText, word)
		if pos < 0 {
			return 0
		}
		positions = append(positions, pos)
	}

	total := 0.0
	for i := 1; i < len(positions); i++ {
		total += math.Abs(float64(positions[i] - positions[i-1]))
	}
	meanDistance := total / math.Max(1, float64(len(positions)-1))

	return 1.0 / (1.0 + meanDistance/proximityScale)
}

// contextSignal scores a skill by containment in NLP-derived spans of the
// job description: entity spans score highest, then noun chunks, then any
// clearly longer span.
func contextSignal(skill string, ctx *jobContext) float64 {
	if ctx == nil || ctx.empty() || len(skill) < contextMinSkillLen {
		return 0
	}

	for _, entity := range ctx.entities {
		if strings.Contains(entity, skill) {
			return contextEntityScore
		}
	}
	for _, chunk := range ctx.chunks {
		if strings.Contains(chunk, skill) {
			return contextChunkScore
		}
	}
	for _, span := range append(append([]string{}, ctx.entities...), ctx.chunks...) {
		if strings.Contains(span, skill) && len(span) > len(skill)+contextPartialMargin {
			return contextPartialScore
		}
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
