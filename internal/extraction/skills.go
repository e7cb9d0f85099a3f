package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

var (
	skillSplitRe      = regexp.MustCompile(`[,;•|\n]+`)
	skillDelimRe      = regexp.MustCompile(`[,;•|]`)
	inlineSkillsRe    = regexp.MustCompile(`(?i)^skills\s*:`)
	otherSectionWords = regexp.MustCompile(`(?i)summary|experience|education|project|certification|objective|profile`)
)

// tokenizeSkills splits free text on the delimiters resumes actually use
// (commas, semicolons, bullets, pipes, newlines) and keeps tokens of a
// plausible skill length. Proficiency is rarely stated, so every inferred
// skill defaults to Intermediate.
func tokenizeSkills(text string) []types.Skill {
	var out []types.Skill
	for _, tok := range skillSplitRe.Split(text, -1) {
		tok = strings.TrimSpace(tok)
		if len(tok) > 1 && len(tok) < 50 {
			out = append(out, types.Skill{
				ID:    types.NewID(),
				Name:  tok,
				Level: types.SkillIntermediate,
			})
		}
	}
	return out
}

// extractSkills reads the skills section, falling back to an inline
// "Skills: ..." line, and as a last resort to a scan for delimiter-dense
// lines anywhere in the document (a skills list without its header).
func extractSkills(doc *document) []types.Skill {
	text := doc.section(sectionSkills)
	if text == "" {
		for _, line := range doc.lines {
			if inlineSkillsRe.MatchString(line) {
				if _, after, found := strings.Cut(line, ":"); found {
					text = after
				}
				break
			}
		}
	}

	var skills []types.Skill
	if text != "" {
		skills = tokenizeSkills(text)
	}
	if len(skills) > 0 {
		return skills
	}

	var fallback []string
	for _, line := range doc.lines {
		if len(line) < 12 || len(line) > 200 {
			continue
		}
		if doc.isSectionHeader(line) {
			continue
		}
		if otherSectionWords.MatchString(line) {
			continue
		}
		if len(skillDelimRe.FindAllString(line, -1)) >= 3 {
			fallback = append(fallback, line)
		}
	}
	if len(fallback) == 0 {
		return nil
	}
	return tokenizeSkills(strings.Join(fallback, " "))
}
