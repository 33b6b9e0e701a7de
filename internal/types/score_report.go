package types

// Match categories, ordered from best to worst.
const (
	CategoryExcellent = "Excellent"
	CategoryStrong    = "Strong"
	CategoryModerate  = "Moderate"
	CategoryWeak      = "Weak"
	CategoryPoor      = "Poor"
)

// Category thresholds (inclusive lower bounds on the final score).
const (
	thresholdExcellent = 85
	thresholdStrong    = 70
	thresholdModerate  = 50
	thresholdWeak      = 30
)

// SkillMatch maps a skill, as it appears in ResumeRecord.Skills, to a match
// strength in (0.0, 1.0]. Skills with zero strength are absent.
type SkillMatch map[string]float64

// ScoreComponents holds the individual scoring percentages, each in [0, 100].
type ScoreComponents struct {
	SkillsScore         float64 `json:"skills_score"`
	ContentMatch        float64 `json:"content_match"`
	SkillCoverage       float64 `json:"skill_coverage"`
	ExperienceRelevance float64 `json:"experience_relevance"`
}

// ScoreReport is the complete result of scoring one resume against one job
// description. It is produced once per (resume, job) pair and never retained
// by the pipeline.
type ScoreReport struct {
	Score         int             `json:"score"`
	Category      string          `json:"category"`
	MatchedSkills SkillMatch      `json:"matched_skills"`
	Components    ScoreComponents `json:"components"`
}

// CategoryForScore buckets a final score into its qualitative category.
func CategoryForScore(score int) string {
	switch {
	case score >= thresholdExcellent:
		return CategoryExcellent
	case score >= thresholdStrong:
		return CategoryStrong
	case score >= thresholdModerate:
		return CategoryModerate
	case score >= thresholdWeak:
		return CategoryWeak
	default:
		return CategoryPoor
	}
}
