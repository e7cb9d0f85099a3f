package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

var (
	bulletRe = regexp.MustCompile(`^[-*•]\s+`)

	// likelyDateLineRe matches anything date-ish: a month-year range, a bare
	// year range, a lone month-year, or a lone year.
	likelyDateLineRe = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\s*(?:-|–|—|to)\s*(?:present|current|\d{4})|\b\d{4}\s*(?:-|–|—|to)\s*(?:present|current|\d{4})|\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b|\b\d{4}\b`)

	// dateTokenRe extracts individual date tokens from a line.
	dateTokenRe = regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|present|current|\d{4}`)

	// dateRangeRe is the stricter pattern used by the last-resort global
	// scan: an explicit range ending in a year or "Present".
	dateRangeRe = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\s*(?:-|–|—)\s*(?:present|\d{4})|\b\d{4}\s*(?:-|–|—)\s*(?:present|\d{4})`)

	presentRe = regexp.MustCompile(`(?i)present|current`)

	// pureDateLineRe matches a line that is nothing but a date or date
	// range, like "Jan 2020 - Present" or "2016 - 2020". Such a line never
	// opens a new entry even when its dash would otherwise read as a
	// position/company separator.
	pureDateLineRe = regexp.MustCompile(`(?i)^(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{4})\s*(?:(?:-|–|—|to)\s*(?:present|current|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{4}))?$`)

	subLabelRe   = regexp.MustCompile(`(?i)^(responsibilities|achievements|highlights)\s*:?\s*$`)
	atSeparator  = regexp.MustCompile(`(?i)^(.+)\s+at\s+(.+)$`)
	wordAtRe     = regexp.MustCompile(`(?i)\s+at\s+`)
	dashSepRe    = regexp.MustCompile(`\s[-–—]\s`)
	looseSplitRe = regexp.MustCompile(`[•\-]+`)
)

func extractDates(line string) []string {
	return dateTokenRe.FindAllString(line, -1)
}

// likelyExpHeader reports whether a line reads like the header of a job
// entry: short, not a bullet or section header or "Responsibilities:"-style
// sub-label, and carrying a position/company separator.
func likelyExpHeader(line string, doc *document) bool {
	if line == "" || bulletRe.MatchString(line) {
		return false
	}
	if len(line) > 120 {
		return false
	}
	if doc.isSectionHeader(line) || subLabelRe.MatchString(line) {
		return false
	}
	return wordAtRe.MatchString(line) || strings.Contains(line, "|") || dashSepRe.MatchString(line)
}

// splitHeader resolves a header line into position and company. Priority:
// "X at Y", then pipe-delimited, then a spaced dash. The remaining
// pipe-delimited tokens (if any) are returned so the caller can mine them
// for dates.
func splitHeader(header string) (position, company string, rest []string) {
	if m := atSeparator.FindStringSubmatch(header); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), nil
	}
	if strings.Contains(header, "|") {
		var parts []string
		for _, p := range strings.Split(header, "|") {
			p = strings.TrimSpace(p)
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			position = parts[0]
		}
		if len(parts) > 1 {
			company = parts[1]
		}
		if len(parts) > 2 {
			rest = parts[2:]
		}
		return position, company, rest
	}
	if dashSepRe.MatchString(header) {
		parts := dashSepRe.Split(header, 2)
		position = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			company = strings.TrimSpace(parts[1])
		}
		return position, company, nil
	}
	return header, "", nil
}

// splitAchievements splits a joined description on bullet characters and on
// isolated hyphens (a hyphen between digits stays, so "2020-2021" and
// "sub-second" survive). Fragments shorter than 6 characters are dropped and
// the list is capped at 5.
func splitAchievements(description string) []string {
	if description == "" {
		return []string{}
	}
	runes := []rune(description)
	var fragments []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			fragments = append(fragments, cur.String())
			cur.Reset()
		}
	}
	for i, r := range runes {
		switch r {
		case '•':
			flush()
		case '-':
			prevDigit := i > 0 && runes[i-1] >= '0' && runes[i-1] <= '9'
			nextDigit := i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9'
			if prevDigit && nextDigit {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	out := []string{}
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if len(f) > 5 {
			out = append(out, f)
		}
		if len(out) == 5 {
			break
		}
	}
	return out
}

// partialExperience is the in-progress entry accumulated by the sequential
// line walk. A nil pointer is the NoActiveEntry state; a non-nil pointer is
// AccumulatingEntry; flush is the terminal transition.
type partialExperience struct {
	header    string
	startDate string
	endDate   string
	detail    []string
}

func startEntry(line string) *partialExperience {
	p := &partialExperience{header: line}
	if dates := extractDates(line); len(dates) > 0 {
		p.startDate = dates[0]
		if len(dates) > 1 {
			p.endDate = dates[1]
		}
	}
	return p
}

// flush converts the accumulated entry into an Experience, or nil when
// nothing meaningful was collected.
func (p *partialExperience) flush() *types.Experience {
	position, company, rest := splitHeader(p.header)
	if p.startDate == "" && len(rest) > 0 {
		if more := extractDates(strings.Join(rest, " ")); len(more) > 0 {
			p.startDate = more[0]
			if len(more) > 1 {
				p.endDate = more[1]
			}
		}
	}

	description := strings.TrimSpace(strings.Join(p.detail, " "))
	if position == "" && company == "" && description == "" {
		return nil
	}
	return &types.Experience{
		ID:           types.NewID(),
		Company:      company,
		Position:     position,
		StartDate:    p.startDate,
		EndDate:      p.endDate,
		Current:      presentRe.MatchString(p.endDate),
		Description:  description,
		Achievements: splitAchievements(description),
	}
}

// sequentialExperience is strategy (a): walk the section lines, opening a
// new entry at each header-looking line and accumulating everything else as
// detail until the next header or end of section.
func sequentialExperience(lines []string, doc *document) []types.Experience {
	var out []types.Experience
	var current *partialExperience

	emit := func() {
		if current == nil {
			return
		}
		if exp := current.flush(); exp != nil {
			out = append(out, *exp)
		}
		current = nil
	}

	for _, line := range lines {
		if current == nil {
			current = startEntry(line)
			continue
		}
		if likelyExpHeader(line, doc) && !pureDateLineRe.MatchString(line) && (len(current.detail) > 0 || current.header != "") {
			emit()
			current = startEntry(line)
			continue
		}
		if likelyDateLineRe.MatchString(line) && current.startDate == "" {
			dates := extractDates(line)
			if len(dates) > 0 {
				current.startDate = dates[0]
			}
			if len(dates) > 1 {
				current.endDate = dates[1]
			}
			continue
		}
		current.detail = append(current.detail, line)
	}
	emit()
	return out
}

// dateAnchoredExperience is strategy (b): locate every date-bearing line and
// rebuild each entry around it, taking up to two preceding non-bullet lines
// as the header and the lines down to the next anchor as detail.
func dateAnchoredExperience(lines []string, doc *document) []types.Experience {
	var anchorIdxs []int
	for i, line := range lines {
		if likelyDateLineRe.MatchString(line) {
			anchorIdxs = append(anchorIdxs, i)
		}
	}

	var out []types.Experience
	for i, dateIdx := range anchorIdxs {
		prevIdx := -1
		if i > 0 {
			prevIdx = anchorIdxs[i-1]
		}
		nextIdx := len(lines)
		if i+1 < len(anchorIdxs) {
			nextIdx = anchorIdxs[i+1]
		}

		var headerCandidates []string
		start := dateIdx - 2
		if prevIdx+1 > start {
			start = prevIdx + 1
		}
		for j := start; j < dateIdx; j++ {
			if j < 0 {
				continue
			}
			line := lines[j]
			if line == "" || bulletRe.MatchString(line) || likelyDateLineRe.MatchString(line) || doc.isSectionHeader(line) {
				continue
			}
			headerCandidates = append(headerCandidates, line)
		}
		header := strings.TrimSpace(strings.Join(headerCandidates, " | "))
		if header == "" {
			if dateIdx > 0 {
				header = lines[dateIdx-1]
			} else {
				header = lines[0]
			}
		}

		position, company, _ := splitHeader(header)

		dates := extractDates(lines[dateIdx])
		var startDate, endDate string
		if len(dates) > 0 {
			startDate = dates[0]
		}
		if len(dates) > 1 {
			endDate = dates[1]
		}

		var detail []string
		for j := dateIdx + 1; j < nextIdx; j++ {
			if doc.isSectionHeader(lines[j]) {
				break
			}
			detail = append(detail, lines[j])
		}
		description := strings.TrimSpace(strings.Join(detail, " "))

		if position == "" && company == "" && description == "" {
			continue
		}
		out = append(out, types.Experience{
			ID:           types.NewID(),
			Company:      company,
			Position:     position,
			StartDate:    startDate,
			EndDate:      endDate,
			Current:      presentRe.MatchString(endDate),
			Description:  description,
			Achievements: splitAchievements(description),
		})
	}
	return out
}

// globalDateScanExperience is strategy (c), the last resort: scan the whole
// document for strict date ranges and treat the preceding line as a header.
func globalDateScanExperience(lines []string, doc *document) []types.Experience {
	var out []types.Experience
	for i, line := range lines {
		if !dateRangeRe.MatchString(line) {
			continue
		}
		header := line
		if i > 0 {
			header = lines[i-1]
		}
		if doc.isSectionHeader(header) {
			continue
		}

		var position, company string
		if m := atSeparator.FindStringSubmatch(header); m != nil {
			position = strings.TrimSpace(m[1])
			company = strings.TrimSpace(m[2])
		} else if strings.Contains(header, "|") {
			var parts []string
			for _, p := range strings.Split(header, "|") {
				p = strings.TrimSpace(p)
				if p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 0 {
				position = parts[0]
			}
			if len(parts) > 1 {
				company = parts[1]
			}
		} else if strings.Contains(header, "-") {
			parts := strings.SplitN(header, "-", 2)
			position = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				company = strings.TrimSpace(parts[1])
			}
		}

		rangeText := dateRangeRe.FindString(line)
		tokens := dateTokenRe.FindAllString(rangeText, -1)
		var startDate, endDate string
		if len(tokens) > 0 {
			startDate = tokens[0]
			endDate = tokens[len(tokens)-1]
		}

		var detail []string
		for j := i + 1; j < len(lines); j++ {
			if doc.isSectionHeader(lines[j]) || dateRangeRe.MatchString(lines[j]) {
				break
			}
			detail = append(detail, lines[j])
		}
		description := strings.Join(detail, " ")

		if position == "" && company == "" {
			continue
		}
		out = append(out, types.Experience{
			ID:           types.NewID(),
			Company:      company,
			Position:     position,
			StartDate:    startDate,
			EndDate:      endDate,
			Current:      presentRe.MatchString(endDate),
			Description:  description,
			Achievements: splitLooseAchievements(description),
		})
	}
	return out
}

// splitLooseAchievements is the global-scan variant: any bullet or hyphen
// run delimits, digits or not.
func splitLooseAchievements(description string) []string {
	out := []string{}
	if description == "" {
		return out
	}
	for _, f := range looseSplitRe.Split(description, -1) {
		f = strings.TrimSpace(f)
		if len(f) > 5 {
			out = append(out, f)
		}
		if len(out) == 5 {
			break
		}
	}
	return out
}

// extractExperience runs the strategy cascade: sequential block parsing
// first, the date-anchored strategy when that finds at most one entry
// (ties keep the sequential result), and the global scan only when both
// found nothing.
func extractExperience(doc *document) []types.Experience {
	var out []types.Experience
	if section := doc.sectionLines(sectionExperience); len(section) > 0 {
		out = sequentialExperience(section, doc)
		if len(out) <= 1 {
			if anchored := dateAnchoredExperience(section, doc); len(anchored) > len(out) {
				out = anchored
			}
		}
	}
	if len(out) == 0 {
		out = globalDateScanExperience(doc.lines, doc)
	}
	return out
}
