package extraction

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	sentenceSplitRe = regexp.MustCompile(`[.\n]`)
	lineSplitRe     = regexp.MustCompile(`\r?\n`)
)

// sentenceLines produces the sentence-like view of the input: whitespace
// collapsed, split on periods and newlines, trimmed, empties dropped.
// Header and date heuristics need the raw view instead; this one suits
// prose such as the name line.
func sentenceLines(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(whitespaceRe.ReplaceAllString(p, " "))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// rawLines produces the structural view: split on newlines only, trimmed,
// empties dropped.
func rawLines(text string) []string {
	parts := lineSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
