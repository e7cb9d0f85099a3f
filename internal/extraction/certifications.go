package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

var bulletPrefixRe = regexp.MustCompile(`^[-*•]\s*`)

// extractCertifications turns every non-empty line of the certifications
// section into one record. A pipe splits the line into name and issuer;
// otherwise the whole line is the name.
func extractCertifications(doc *document) []types.Certification {
	lines := doc.sectionLines(sectionCertifications)
	var out []types.Certification
	for _, line := range lines {
		cleaned := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if len(cleaned) <= 2 {
			continue
		}
		cert := types.Certification{ID: types.NewID(), Name: cleaned}
		if strings.Contains(cleaned, "|") {
			var parts []string
			for _, p := range strings.Split(cleaned, "|") {
				p = strings.TrimSpace(p)
				if p != "" {
					parts = append(parts, p)
				}
			}
			if len(parts) > 0 {
				cert.Name = parts[0]
			}
			if len(parts) > 1 {
				cert.Issuer = parts[1]
			}
		}
		out = append(out, cert)
	}
	return out
}

var affiliationSplitRe = regexp.MustCompile(`[\n•]`)

// extractAffiliations collects the affiliations section into a single fixed
// custom section. Lines are further split on bullets and pipes, bullet
// prefixes stripped, and duplicates dropped while preserving order. Nothing
// is emitted for an empty section.
func extractAffiliations(doc *document) []types.CustomSection {
	text := doc.section(sectionAffiliations)
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var items []string
	for _, chunk := range affiliationSplitRe.Split(text, -1) {
		for _, item := range strings.Split(chunk, "|") {
			item = strings.TrimSpace(bulletPrefixRe.ReplaceAllString(strings.TrimSpace(item), ""))
			if len(item) <= 2 || seen[item] {
				continue
			}
			seen[item] = true
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	return []types.CustomSection{{
		ID:    types.NewID(),
		Title: "Professional Affiliations",
		Items: items,
	}}
}
