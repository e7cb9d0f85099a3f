package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

var (
	emailRe      = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,}`)
	phoneRe      = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	phoneHintRe  = regexp.MustCompile(`\d{3}[-.\s]?\d{3}`)
	linkedInRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[A-Za-z0-9_\-/%]+`)
	urlRe        = regexp.MustCompile(`(?i)https?://[^\s)]+|www\.[^\s)]+`)
	linkHintRe   = regexp.MustCompile(`(?i)linkedin\.com|https?://`)
	yearPrefixRe = regexp.MustCompile(`^\d{4}`)
)

// extractPersonalInfo runs the independent contact-detection passes over the
// whole text. Each pass degrades to an empty field when nothing matches; the
// passes do not depend on one another's results except that the website
// pass skips LinkedIn URLs.
func extractPersonalInfo(text string, sentences, lines []string) types.PersonalInfo {
	var info types.PersonalInfo

	// Name: first sentence-view line, unless it looks like an email or a
	// long header.
	if len(sentences) > 0 {
		first := sentences[0]
		if !strings.Contains(first, "@") && len(first) < 50 {
			parts := strings.Fields(first)
			if len(parts) > 0 {
				info.FirstName = parts[0]
				info.LastName = strings.Join(parts[1:], " ")
			}
		}
	}

	info.Email = emailRe.FindString(text)
	info.Phone = phoneRe.FindString(text)
	info.LinkedIn = linkedInRe.FindString(text)

	for _, u := range urlRe.FindAllString(text, -1) {
		if !strings.Contains(strings.ToLower(u), "linkedin.com") {
			info.Website = u
			break
		}
	}

	// Location: first of the opening lines that contains a comma and is not
	// contact info. Heuristic for "City, State".
	for _, line := range head(lines, 6) {
		if len(line) > 60 {
			continue
		}
		if strings.Contains(line, "@") || phoneHintRe.MatchString(line) {
			continue
		}
		if linkHintRe.MatchString(line) {
			continue
		}
		if strings.Contains(line, ",") {
			info.Location = line
			break
		}
	}

	// Title: first plausible line after the name line.
	for i := 1; i < len(lines) && i < 6; i++ {
		line := lines[i]
		if strings.Contains(line, "@") || len(line) >= 80 {
			continue
		}
		if yearPrefixRe.MatchString(line) {
			continue
		}
		if strings.Contains(strings.ToLower(line), "summary") {
			continue
		}
		info.Title = line
		break
	}

	return info
}

// head returns the first n elements of lines, or all of them if fewer.
func head(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}
