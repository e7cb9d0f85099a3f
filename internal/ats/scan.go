// Package ats scores raw resume text the way applicant tracking systems
// read it: contact details, recognizable section headers, keyword overlap
// with a job description, and formatting hygiene.
package ats

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

// Category weights. The four categories sum to 100.
const (
	maxContact    = 20
	maxSections   = 40
	maxKeywords   = 30
	maxFormatting = 10

	scanKeywordLimit = 25

	minWordCount = 250
	maxWordCount = 1200
)

var (
	emailSignalRe    = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.[a-zA-Z]{2,}`)
	phoneSignalRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedInSignalRe = regexp.MustCompile(`(?i)linkedin\.com/in/|linkedin`)

	summaryHeaderRe    = regexp.MustCompile(`(?i)\b(summary|professional summary|profile)\b`)
	experienceHeaderRe = regexp.MustCompile(`(?i)\b(experience|work experience|professional experience|employment)\b`)
	educationHeaderRe  = regexp.MustCompile(`(?i)\b(education)\b`)
	skillsHeaderRe     = regexp.MustCompile(`(?i)\b(skills|technical skills|core competencies)\b`)
	certsHeaderRe      = regexp.MustCompile(`(?i)\b(certifications?|certificates?)\b`)

	bulletLineRe = regexp.MustCompile(`(^|\n)\s*[-*]\s+`)
	quantifiedRe = regexp.MustCompile(`(\$|%|\b\d+\b)`)
)

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Scan scores resume text against an optional job description and returns
// the score, its per-category breakdown, the raw signals behind it, and
// actionable suggestions. It never fails: empty input scores zero.
func Scan(resumeText, jobDescription string) *types.ScanResult {
	resumeText = strings.TrimSpace(resumeText)
	jd := strings.TrimSpace(jobDescription)

	lower := strings.ToLower(resumeText)
	wordCount := len(tokenize(resumeText))

	email := emailSignalRe.MatchString(resumeText)
	phone := phoneSignalRe.MatchString(resumeText)
	linkedIn := linkedInSignalRe.MatchString(resumeText)
	contact := clamp(points(email, 8)+points(phone, 6)+points(linkedIn, 6), 0, maxContact)

	hasSummary := summaryHeaderRe.MatchString(resumeText)
	hasExperience := experienceHeaderRe.MatchString(resumeText)
	hasEducation := educationHeaderRe.MatchString(resumeText)
	hasSkills := skillsHeaderRe.MatchString(resumeText)
	hasCerts := certsHeaderRe.MatchString(resumeText)
	sections := clamp(
		points(hasSummary, 10)+points(hasExperience, 14)+points(hasEducation, 8)+
			points(hasSkills, 8)+points(hasCerts, 4),
		0, maxSections)

	var keywords []string
	if jd != "" {
		keywords = ExtractKeywords(jd, scanKeywordLimit)
	}
	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}
	var coverage float64
	var keywordScore int
	if len(keywords) > 0 {
		coverage = float64(len(matched)) / float64(len(keywords))
		keywordScore = clamp(int(math.Round(coverage*maxKeywords)), 0, maxKeywords)
	}

	hasBullets := bulletLineRe.MatchString(resumeText) || strings.ContainsRune(resumeText, '•')
	reasonableLength := wordCount >= minWordCount && wordCount <= maxWordCount
	formatting := clamp(points(hasBullets, 5)+points(reasonableLength, 5), 0, maxFormatting)

	quantified := 0
	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") {
			if quantifiedRe.MatchString(line) {
				quantified++
			}
		}
	}

	breakdown := types.ScanBreakdown{
		Contact:    contact,
		Sections:   sections,
		Keywords:   keywordScore,
		Formatting: formatting,
	}
	signals := types.ScanSignals{
		Email:                 email,
		Phone:                 phone,
		LinkedIn:              linkedIn,
		HasSummary:            hasSummary,
		HasExperience:         hasExperience,
		HasEducation:          hasEducation,
		HasSkills:             hasSkills,
		HasCerts:              hasCerts,
		HasBullets:            hasBullets,
		QuantifiedBulletCount: quantified,
		KeywordCoverage:       coverage,
	}

	return &types.ScanResult{
		Score:           clamp(contact+sections+keywordScore+formatting, 0, 100),
		Breakdown:       breakdown,
		Signals:         signals,
		WordCount:       wordCount,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     buildSuggestions(signals, jd != "", len(missing) > 0),
	}
}

func points(ok bool, n int) int {
	if ok {
		return n
	}
	return 0
}
