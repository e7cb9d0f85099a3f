package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.Resume{
		Name: "Jane Doe",
		PersonalInfo: types.PersonalInfo{
			Title: "Software Engineer",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Experience: []types.Experience{{Company: "Acme Corp"}},
		Skills: []types.Skill{
			{Name: "Go"},
			{Name: "Python"},
		},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Software Engineer")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Experience entries:  1")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "Python")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResume_ManySkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.Resume{Name: "Jane Doe"}
	for _, name := range []string{"Go", "Python", "Rust", "Java", "C++", "SQL", "Bash"} {
		resume.Skills = append(resume.Skills, types.Skill{Name: name})
	}

	p.PrintResume(resume)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintScanResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScanResult{
		Score: 72,
		Breakdown: types.ScanBreakdown{
			Contact:    20,
			Sections:   32,
			Keywords:   15,
			Formatting: 5,
		},
		WordCount:       310,
		MatchedKeywords: []string{"golang", "kubernetes"},
		MissingKeywords: []string{"terraform"},
		Suggestions:     []string{"Add a phone number in the header."},
	}

	p.PrintScanResult(result)
	output := buf.String()

	assert.Contains(t, output, "ATS SCAN RESULT")
	assert.Contains(t, output, "Score: 72 / 100")
	assert.Contains(t, output, "Contact:     20 / 20")
	assert.Contains(t, output, "golang, kubernetes")
	assert.Contains(t, output, "terraform")
	assert.Contains(t, output, "SUGGESTIONS")
	assert.Contains(t, output, "Add a phone number")
}

func TestPrintScanResult_NoSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScanResult(&types.ScanResult{Score: 100})

	assert.Contains(t, buf.String(), "NO SUGGESTIONS")
}

func TestPrintScanResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScanResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScanResult_ManySuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScanResult{
		Suggestions: []string{"one", "two", "three", "four", "five", "six", "seven"},
	}

	p.PrintScanResult(result)
	output := buf.String()

	assert.Contains(t, output, "Found 7 suggestions")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.Resume{Name: strings.Repeat("x", 100)}
	p.PrintResume(resume)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
