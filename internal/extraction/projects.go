package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

var (
	techLabelRe = regexp.MustCompile(`(?i)^(tech|technologies|stack|tools)\s*:\s*(.+)$`)
	techSplitRe = regexp.MustCompile(`[,;|]`)
	bareLinkRe  = regexp.MustCompile(`(?i)https?://[^\s)]+|www\.[^\s)]+`)
)

// isProjectTitle reports whether a line looks like the start of a new
// project entry. "Tech:"-labeled lines carry a colon but belong to the
// entry above them.
func isProjectTitle(line string) bool {
	return !bulletRe.MatchString(line) && len(line) < 90 &&
		!likelyDateLineRe.MatchString(line) &&
		!techLabelRe.MatchString(line) &&
		(strings.Contains(line, ":") || strings.Contains(line, "|"))
}

// buildProject turns a buffered run of lines into a Project. The first line
// is the name; a "tech:"-labeled line fills the technology list; the first
// bare URL becomes the link; everything else joins into the description.
func buildProject(buffer []string) *types.Project {
	if len(buffer) == 0 {
		return nil
	}
	name := buffer[0]
	if name == "" {
		return nil
	}

	var description []string
	technologies := []string{}
	var link string

	for _, line := range buffer[1:] {
		if m := techLabelRe.FindStringSubmatch(line); m != nil {
			for _, t := range techSplitRe.Split(m[2], -1) {
				t = strings.TrimSpace(t)
				if t != "" {
					technologies = append(technologies, t)
				}
			}
			continue
		}
		if link == "" {
			link = bareLinkRe.FindString(line)
		}
		description = append(description, line)
	}

	return &types.Project{
		ID:           types.NewID(),
		Name:         name,
		Description:  strings.Join(description, " "),
		Technologies: technologies,
		Link:         link,
	}
}

// extractProjects walks the projects section, starting a new buffer at each
// title-looking line (short, not a bullet or date, containing ":" or "|").
func extractProjects(doc *document) []types.Project {
	lines := doc.sectionLines(sectionProjects)
	if len(lines) == 0 {
		return nil
	}

	var out []types.Project
	var buffer []string

	flush := func() {
		if p := buildProject(buffer); p != nil {
			out = append(out, *p)
		}
		buffer = nil
	}

	for _, line := range lines {
		if len(buffer) == 0 {
			buffer = append(buffer, line)
			continue
		}
		if isProjectTitle(line) {
			flush()
			buffer = []string{line}
			continue
		}
		buffer = append(buffer, line)
	}
	flush()
	return out
}
