// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
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

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", resume.PersonalInfo.Title))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.PersonalInfo.Phone))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience entries:  %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Education records:   %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:      %d\n", len(resume.Certifications)))
	sb.WriteString(fmt.Sprintf("Projects:            %d\n", len(resume.Projects)))

	if len(resume.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(resume.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", resume.Skills[i].Name))
		}
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScanResult outputs the score breakdown, detected signals, keyword
// matches, and suggestions from one scan.
func (p *Printer) PrintScanResult(result *types.ScanResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d / 100\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("Contact:     %2d / 20\n", result.Breakdown.Contact))
	sb.WriteString(fmt.Sprintf("Sections:    %2d / 40\n", result.Breakdown.Sections))
	sb.WriteString(fmt.Sprintf("Keywords:    %2d / 30\n", result.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("Formatting:  %2d / 10\n", result.Breakdown.Formatting))
	sb.WriteString(fmt.Sprintf("\nWord count: %d\n", result.WordCount))

	if len(result.MatchedKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched:  %s\n", truncate(strings.Join(result.MatchedKeywords, ", "), 45)))
	}
	if len(result.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", truncate(strings.Join(result.MissingKeywords, ", "), 45)))
	}

	p.printBox("ATS SCAN RESULT", strings.TrimSuffix(sb.String(), "\n"))
	p.printSuggestions(result.Suggestions)
}

// printSuggestions renders the suggestion list, or a green box when there
// is nothing to fix.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d suggestions:\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", truncate(suggestions[i], 50)))
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(suggestions)-maxItemsToShow))
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
