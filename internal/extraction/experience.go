package extraction

import (
	"strings"

	"go.uber.org/zap"
)

// experienceSectionAliases name the experience-like section.
var experienceSectionAliases = []string{
	"experience", "work experience", "professional experience",
	"employment history", "work history", "career history",
}

// verbIndicators mark sentences that likely describe work performed.
var verbIndicators = []string{
	"worked", "managed", "developed", "created",
	"designed", "implemented", "led", "responsible",
}

// roleIndicators mark lines that likely open a new role entry.
var roleIndicators = []string{
	"engineer", "developer", "manager", "director",
	"analyst", "designer", "consultant", "specialist",
}

// minSentenceWords filters out short fragments in the sentence strategy.
const minSentenceWords = 5

// extractExperience locates the experience-like section and applies the
// sentence, line, and bullet strategies in order; the first to yield any
// entries wins. A missing section yields no entries.
func (e *Extractor) extractExperience(text string) []string {
	section, found := LocateSection(text, experienceSectionAliases)
	if !found {
		return nil
	}

	if entries := e.sentenceExperience(section.Body); len(entries) > 0 {
		return entries
	}
	if entries := lineExperience(section.Body); len(entries) > 0 {
		return entries
	}
	return bulletExperience(section.Body)
}

// sentenceExperience keeps sentences that contain a work-verb indicator
// and enough words to be a real description. It yields nothing without the
// NLP capability.
func (e *Extractor) sentenceExperience(body string) []string {
	sentences, err := e.engine.Sentences(body)
	if err != nil {
		e.log.Debug("sentence segmentation failed for experience", zap.Error(err))
		return nil
	}

	var entries []string
	for _, sentence := range sentences {
		if !containsAnyFold(sentence, verbIndicators) {
			continue
		}
		if len(strings.Fields(sentence)) <= minSentenceWords {
			continue
		}
		entries = append(entries, strings.TrimSpace(sentence))
	}
	return entries
}

// lineExperience opens a new entry at every line that begins upper-case
// and names a role; following lines extend the open entry. Lines before
// the first role line belong to no entry and are dropped.
func lineExperience(body string) []string {
	var entries []string
	var current strings.Builder
	open := false

	flush := func() {
		if open && strings.TrimSpace(current.String()) != "" {
			entries = append(entries, strings.TrimSpace(current.String()))
		}
		current.Reset()
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if startsUpper(line) && containsAnyFold(line, roleIndicators) {
			flush()
			open = true
			current.WriteString(line)
			continue
		}
		if open {
			current.WriteString(" ")
			current.WriteString(line)
		}
	}
	flush()

	return entries
}

// bulletExperience splits the section on bullet markers and keeps each
// non-empty trimmed segment. The segment before the first bullet is the
// section lead-in, not an entry.
func bulletExperience(body string) []string {
	if !strings.Contains(body, "•") {
		return nil
	}

	segments := strings.Split(body, "•")
	var entries []string
	for _, segment := range segments[1:] {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

func startsUpper(s string) bool {
	for _, r := range s {
		return r >= 'A' && r <= 'Z'
	}
	return false
}
