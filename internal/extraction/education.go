package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

var (
	degreeHintRe = regexp.MustCompile(`(?i)bachelor|master|phd|doctorate|associate|mba|b\.?s\.?|m\.?s\.?|b\.?a\.?|m\.?a\.?|diploma|certificate`)
	schoolHintRe = regexp.MustCompile(`(?i)university|college|institute|school|academy`)
	yearRe       = regexp.MustCompile(`\b\d{4}\b`)
)

// sequentialEducation walks the section lines, classifying each as
// institution-like or degree-like. A new record opens when a line's
// classification conflicts with what the current record already holds.
// 4-digit years found on any line fill the record's start/end dates.
func sequentialEducation(lines []string) []types.Education {
	var out []types.Education
	var current *types.Education

	flush := func() {
		if current == nil {
			return
		}
		if current.Institution != "" || current.Degree != "" {
			out = append(out, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if current == nil {
			current = &types.Education{ID: types.NewID()}
		}

		years := yearRe.FindAllString(line, -1)
		if len(years) > 0 {
			if current.StartDate == "" {
				current.StartDate = years[0]
			}
			if len(years) > 1 {
				current.EndDate = years[1]
			} else if current.EndDate == "" {
				current.EndDate = years[0]
			}
		}

		isSchool := schoolHintRe.MatchString(line)
		isDegree := degreeHintRe.MatchString(line)

		// A school-like line when the institution slot is taken, or a
		// degree-like line when the degree slot is taken, belongs to the
		// next record.
		startsNew := (isSchool && current.Institution != "") ||
			(isDegree && current.Degree != "")

		if startsNew {
			flush()
			current = &types.Education{ID: types.NewID()}
		}

		switch {
		case current.Institution == "" && isSchool:
			current.Institution = line
		case current.Degree == "" && isDegree:
			current.Degree = line
		case current.Institution == "":
			current.Institution = line
		case current.Degree == "":
			current.Degree = line
		}
	}
	flush()
	return out
}

// dateAnchoredEducation mirrors the experience fallback: group the section
// by year-bearing lines, treating the two preceding lines as institution
// and degree.
func dateAnchoredEducation(lines []string) []types.Education {
	var out []types.Education
	for idx, line := range lines {
		if !yearRe.MatchString(line) {
			continue
		}
		dates := yearRe.FindAllString(line, -1)

		var institution, degree string
		if idx >= 2 {
			institution = strings.TrimSpace(lines[idx-2])
		}
		if idx >= 1 {
			degree = strings.TrimSpace(lines[idx-1])
		}
		if institution == "" && degree == "" {
			continue
		}

		edu := types.Education{
			ID:          types.NewID(),
			Institution: institution,
			Degree:      degree,
		}
		if len(dates) > 0 {
			edu.StartDate = dates[0]
			edu.EndDate = dates[0]
		}
		if len(dates) > 1 {
			edu.EndDate = dates[1]
		}
		out = append(out, edu)
	}
	return out
}

// extractEducation applies the sequential classifier first and promotes the
// date-anchored grouping only when it finds strictly more records.
func extractEducation(doc *document) []types.Education {
	lines := doc.sectionLines(sectionEducation)
	if len(lines) == 0 {
		return nil
	}
	out := sequentialEducation(lines)
	if len(out) <= 1 {
		if anchored := dateAnchoredEducation(lines); len(anchored) > len(out) {
			out = anchored
		}
	}
	return out
}
