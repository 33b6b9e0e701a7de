package extraction

import (
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

// skillSectionAliases name the skills-like section for the
// classifier-backed strategy.
var skillSectionAliases = []string{
	"skills", "technical skills", "core competencies",
	"technologies", "qualifications", "expertise",
}

// skillDelimiters split a skills section body into candidate spans.
var skillDelimiters = regexp.MustCompile("[,.\n•|\t/&]")

// extractSkills unions the catalog, classifier, and entity strategies into
// one case-insensitively deduplicated set, sorted by original-case string.
func (e *Extractor) extractSkills(text string) []string {
	set := newSkillSet()

	e.catalogSkills(text, set)
	e.classifierSkills(text, set)
	e.entitySkills(text, set)

	return set.sorted()
}

// catalogSkills adds every catalog skill that occurs as a whole word.
// Single-word entries of 2 characters or fewer are skipped to keep short
// acronyms from matching inside unrelated words.
func (e *Extractor) catalogSkills(text string, set *skillSet) {
	for _, skill := range catalog.All() {
		if len(strings.Fields(skill)) == 1 && len(skill) <= 2 {
			continue
		}
		if wholeWordPattern(skill).MatchString(text) {
			set.add(skill)
		}
	}
}

// classifierSkills splits the skills-like section into candidate spans and
// keeps the ones the classifier accepts. The strategy is skipped when no
// classifier or no skills-like section is available.
func (e *Extractor) classifierSkills(text string, set *skillSet) {
	if e.clf == nil {
		return
	}
	section, found := LocateSection(text, skillSectionAliases)
	if !found {
		return
	}

	for _, candidate := range skillDelimiters.Split(section.Body, -1) {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) <= 1 {
			continue
		}
		if e.clf.IsSkill(candidate) {
			set.add(candidate)
		}
	}
}

// entitySkills keeps ORGANIZATION and PRODUCT entities of 2-4 words. When
// a classifier is present it filters the candidates; otherwise they are
// kept unconditionally.
func (e *Extractor) entitySkills(text string, set *skillSet) {
	entities, err := e.engine.Entities(text)
	if err != nil {
		e.log.Debug("entity extraction failed for skills", zap.Error(err))
		return
	}

	for _, entity := range entities {
		if entity.Label != nlp.LabelOrganization && entity.Label != nlp.LabelProduct {
			continue
		}
		words := len(strings.Fields(entity.Text))
		if words < 2 || words > 4 || len(entity.Text) <= 2 {
			continue
		}
		if e.clf != nil && !e.clf.IsSkill(entity.Text) {
			continue
		}
		set.add(entity.Text)
	}
}

// wholeWordPattern builds a case-insensitive whole-word matcher for a
// skill. Word boundaries are non-alphanumeric characters or the text
// edges, so punctuated skills ("C++", "Node.js") still anchor correctly.
func wholeWordPattern(skill string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^a-z0-9_])` + regexp.QuoteMeta(skill) + `(?:[^a-z0-9_]|$)`)
}

// skillSet deduplicates skills case-insensitively while preserving the
// first-seen original casing for display.
type skillSet struct {
	byFold map[string]string
}

func newSkillSet() *skillSet {
	return &skillSet{byFold: make(map[string]string)}
}

func (s *skillSet) add(skill string) {
	fold := strings.ToLower(skill)
	if _, exists := s.byFold[fold]; !exists {
		s.byFold[fold] = skill
	}
}

func (s *skillSet) sorted() []string {
	skills := make([]string, 0, len(s.byFold))
	for _, skill := range s.byFold {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// dedupeAndSort applies the skillSet invariant to an externally supplied
// skill list.
func dedupeAndSort(skills []string) []string {
	if skills == nil {
		return nil
	}
	set := newSkillSet()
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			set.add(trimmed)
		}
	}
	return set.sorted()
}
