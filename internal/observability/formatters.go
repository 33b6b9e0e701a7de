// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of the extracted record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", record.Phone))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(record.Skills)))
	for i, skill := range record.Skills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", skill))
	}

	sb.WriteString(fmt.Sprintf("Experience entries: %d", len(record.Experience)))

	p.printBox("Extracted Resume", sb.String())
}

// PrintScoreReport outputs a human-readable score breakdown.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:     %d / 100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Category:  %s Match\n", report.Category))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills score:          %5.1f\n", report.Components.SkillsScore))
	sb.WriteString(fmt.Sprintf("Content match:         %5.1f\n", report.Components.ContentMatch))
	sb.WriteString(fmt.Sprintf("Skill coverage:        %5.1f\n", report.Components.SkillCoverage))
	sb.WriteString(fmt.Sprintf("Experience relevance:  %5.1f\n", report.Components.ExperienceRelevance))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Matched skills (%d):\n", len(report.MatchedSkills)))
	skills := make([]string, 0, len(report.MatchedSkills))
	for skill := range report.MatchedSkills {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	for i, skill := range skills {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more", len(skills)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s (%.2f)\n", skill, report.MatchedSkills[skill]))
	}

	p.printBox("Match Report", strings.TrimRight(sb.String(), "\n"))
}
