package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// Canonical section keys.
const (
	sectionSummary        = "summary"
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionSkills         = "skills"
	sectionCertifications = "certifications"
	sectionProjects       = "projects"
	sectionAffiliations   = "affiliations"
)

// sectionAliases maps each canonical section key to the header spellings
// commonly seen in resumes. Matching is case- and punctuation-insensitive.
var sectionAliases = map[string][]string{
	sectionSummary:    {"summary", "professional summary", "summary of qualifications", "objective", "profile", "professional profile"},
	sectionExperience: {"experience", "work experience", "work history", "professional experience", "employment", "employment history"},
	sectionEducation:  {"education", "education and training", "education & training", "academic background"},
	sectionSkills: {
		"skills", "technical skills", "core skills", "key skills",
		"skills and tools", "skills & tools", "tools", "technologies",
		"technology", "core competencies", "expertise", "areas of expertise",
	},
	sectionCertifications: {"certifications", "certificates", "licenses", "certifications and training"},
	sectionProjects:       {"projects", "project experience", "selected projects"},
	sectionAffiliations:   {"professional affiliations", "affiliations", "memberships", "professional memberships"},
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)

// normalizeHeader lowercases a line, strips non-alphanumerics, and collapses
// whitespace so header spellings like "WORK  EXPERIENCE:" and "Work
// Experience" compare equal.
func normalizeHeader(line string) string {
	s := strings.ToLower(line)
	s = nonAlnumRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// aliasEntry pairs a normalized alias with its canonical section key.
type aliasEntry struct {
	alias string
	key   string
}

// aliasEntries holds every alias sorted by descending length so that longer
// aliases match before their prefixes ("professional summary" before
// "summary"). Built once at init.
var aliasEntries = buildAliasEntries()

func buildAliasEntries() []aliasEntry {
	var entries []aliasEntry
	for key, aliases := range sectionAliases {
		for _, alias := range aliases {
			entries = append(entries, aliasEntry{alias: normalizeHeader(alias), key: key})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].alias) > len(entries[j].alias)
	})
	return entries
}

// anchor records a detected section header: which section it opens, the raw
// line index, and any inline continuation text on the header line itself
// (e.g. "Skills: Python, Go").
type anchor struct {
	key    string
	idx    int
	inline string
}

// inlineAfterAlias extracts text following the alias on a header line,
// skipping a trailing colon, pipe, or dash after the header word.
func inlineAfterAlias(line, alias string) string {
	escaped := strings.ReplaceAll(regexp.QuoteMeta(alias), ` `, `\s+`)
	rx, err := regexp.Compile(`(?i)^[^a-zA-Z0-9]*` + escaped + `\b\s*[:|\-–—]?\s*(.*)$`)
	if err != nil {
		return ""
	}
	m := rx.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// document is the segmented view of one resume: raw lines plus the ordered
// list of section anchors found in them.
type document struct {
	lines   []string
	anchors []anchor
}

// newDocument scans the raw lines for section headers. A line anchors a
// section when its normalized form equals a known alias or starts with an
// alias followed by a space.
func newDocument(lines []string) *document {
	d := &document{lines: lines}
	for i, line := range lines {
		nh := normalizeHeader(line)
		if nh == "" {
			continue
		}
		for _, entry := range aliasEntries {
			if nh == entry.alias || strings.HasPrefix(nh, entry.alias+" ") {
				d.anchors = append(d.anchors, anchor{
					key:    entry.key,
					idx:    i,
					inline: inlineAfterAlias(line, entry.alias),
				})
				break
			}
		}
	}
	return d
}

// isSectionHeader reports whether a line would be recognized as any section
// header. Used by entry parsers to stop at section boundaries.
func (d *document) isSectionHeader(line string) bool {
	nh := normalizeHeader(line)
	if nh == "" {
		return false
	}
	for _, entry := range aliasEntries {
		if nh == entry.alias || strings.HasPrefix(nh, entry.alias) {
			return true
		}
	}
	return false
}

// section returns the text belonging to the named section: the header's
// inline continuation (if any) plus every raw line strictly between this
// anchor and the nearest following anchor of any section. Sections never
// overlap. Returns "" when the section was not detected.
func (d *document) section(key string) string {
	var sec *anchor
	for i := range d.anchors {
		if d.anchors[i].key == key {
			sec = &d.anchors[i]
			break
		}
	}
	if sec == nil {
		return ""
	}

	end := len(d.lines)
	for _, a := range d.anchors {
		if a.idx > sec.idx && a.idx < end {
			end = a.idx
		}
	}

	var lines []string
	if sec.inline != "" {
		lines = append(lines, sec.inline)
	}
	lines = append(lines, d.lines[sec.idx+1:end]...)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// sectionLines returns the section content split back into trimmed,
// non-empty lines.
func (d *document) sectionLines(key string) []string {
	text := d.section(key)
	if text == "" {
		return nil
	}
	return rawLines(text)
}
