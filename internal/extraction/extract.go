// Package extraction parses free-form resume text into a structured Resume
// record using layout heuristics: section header aliases, date patterns,
// separator characters, and line position. Every stage is best-effort; the
// engine never fails, it only leaves fields empty.
package extraction

import (
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

// builder accumulates extraction results with every field defaulted, so the
// per-section extractors never have to reason about missing values. freeze
// produces the final Resume.
type builder struct {
	resume types.Resume
}

func newBuilder() *builder {
	return &builder{resume: types.Resume{
		Experience:     []types.Experience{},
		Education:      []types.Education{},
		Skills:         []types.Skill{},
		Projects:       []types.Project{},
		Certifications: []types.Certification{},
		CustomSections: []types.CustomSection{},
	}}
}

func (b *builder) freeze() *types.Resume {
	name := b.resume.PersonalInfo.FirstName
	if b.resume.PersonalInfo.LastName != "" {
		name += " " + b.resume.PersonalInfo.LastName
	}
	b.resume.Name = strings.TrimSpace(name)
	r := b.resume
	return &r
}

// Parse extracts a structured Resume from plain resume text. It is total
// over any input, including the empty string: absence of a structural cue
// yields an empty field or list, never an error. The function is pure and
// safe for concurrent use.
func Parse(text string) *types.Resume {
	sentences := sentenceLines(text)
	lines := rawLines(text)
	doc := newDocument(lines)

	b := newBuilder()
	b.resume.PersonalInfo = extractPersonalInfo(text, sentences, lines)
	b.resume.Summary = doc.section(sectionSummary)

	if skills := extractSkills(doc); skills != nil {
		b.resume.Skills = skills
	}
	if exp := extractExperience(doc); exp != nil {
		b.resume.Experience = exp
	}
	if edu := extractEducation(doc); edu != nil {
		b.resume.Education = edu
	}
	if certs := extractCertifications(doc); certs != nil {
		b.resume.Certifications = certs
	}
	if projects := extractProjects(doc); projects != nil {
		b.resume.Projects = projects
	}
	if custom := extractAffiliations(doc); custom != nil {
		b.resume.CustomSections = custom
	}

	return b.freeze()
}
