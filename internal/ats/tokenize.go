package ats

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultKeywordLimit caps keyword extraction when the caller does not
// supply its own limit.
const DefaultKeywordLimit = 20

// stopwords are filler words excluded from keyword extraction.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"that": {}, "the": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// nonTokenRe matches everything outside the token alphabet. Technical
// tokens like "c++", "ci/cd", "c#" and ".net" survive tokenization.
var nonTokenRe = regexp.MustCompile(`[^a-z0-9+\-/#.\s]`)

func tokenize(text string) []string {
	cleaned := nonTokenRe.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// ExtractKeywords pulls the most frequent meaningful tokens from a job
// description, ranked by frequency. Tokens shorter than three characters
// and stopwords are skipped. Relative order of equally frequent tokens is
// unspecified.
func ExtractKeywords(jobDescription string, max int) []string {
	if max <= 0 {
		max = DefaultKeywordLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, token := range tokenize(jobDescription) {
		if len(token) < 3 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > max {
		order = order[:max]
	}
	return order
}
