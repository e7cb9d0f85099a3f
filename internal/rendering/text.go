// Package rendering flattens a structured Resume back into plain text in a
// stable section order, suitable for feeding the ATS scorer or diffing two
// parses.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-scanner/internal/types"
)

// joinPresent joins the non-empty parts with the separator.
func joinPresent(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// ResumeToText renders a Resume as upper-case-headed plain text. Sections
// with no content are omitted entirely. Output always ends with a single
// trailing newline.
func ResumeToText(r *types.Resume) string {
	var out []string

	name := strings.TrimSpace(joinPresent(" ", r.PersonalInfo.FirstName, r.PersonalInfo.LastName))
	if name != "" {
		out = append(out, name)
	}
	if r.PersonalInfo.Title != "" {
		out = append(out, r.PersonalInfo.Title)
	}

	contact := joinPresent(" | ",
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Location,
		r.PersonalInfo.LinkedIn,
		r.PersonalInfo.Website,
	)
	if contact != "" {
		out = append(out, contact)
	}

	if r.Summary != "" {
		out = append(out, "", "SUMMARY", r.Summary)
	}

	if len(r.Skills) > 0 {
		names := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			names = append(names, s.Name)
		}
		out = append(out, "", "SKILLS", strings.Join(names, " | "))
	}

	if len(r.Experience) > 0 {
		out = append(out, "", "EXPERIENCE")
		for _, exp := range r.Experience {
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			dates := joinPresent(" - ", exp.StartDate, end)
			if dates != "" {
				dates = "(" + dates + ")"
			}
			out = append(out, strings.TrimSpace(joinPresent(" ", exp.Position, "-", exp.Company, dates)))
			for _, a := range exp.Achievements {
				if strings.TrimSpace(a) != "" {
					out = append(out, "- "+a)
				}
			}
			if strings.TrimSpace(exp.Description) != "" {
				out = append(out, "- "+exp.Description)
			}
			out = append(out, "")
		}
	}

	if len(r.Education) > 0 {
		out = append(out, "", "EDUCATION")
		for _, edu := range r.Education {
			dates := joinPresent(" - ", edu.StartDate, edu.EndDate)
			if dates != "" {
				dates = "(" + dates + ")"
			}
			out = append(out, strings.TrimSpace(joinPresent(" ", edu.Institution, dates)))
			field := ""
			if edu.Field != "" {
				field = "in " + edu.Field
			}
			out = append(out, strings.TrimSpace(joinPresent(" ", edu.Degree, field)))
			out = append(out, "")
		}
	}

	if len(r.Certifications) > 0 {
		out = append(out, "", "CERTIFICATIONS")
		for _, cert := range r.Certifications {
			issuer := ""
			if cert.Issuer != "" {
				issuer = "| " + cert.Issuer
			}
			expiry := ""
			if cert.Expiry != "" {
				expiry = "- " + cert.Expiry
			}
			when := joinPresent(" ", cert.Date, expiry)
			if when != "" {
				when = "| " + when
			}
			out = append(out, strings.TrimSpace(joinPresent(" ", cert.Name, issuer, when)))
		}
	}

	for _, section := range r.CustomSections {
		if strings.TrimSpace(section.Title) == "" {
			continue
		}
		out = append(out, "", strings.ToUpper(section.Title))
		for _, item := range section.Items {
			if strings.TrimSpace(item) != "" {
				out = append(out, "- "+item)
			}
		}
	}

	return strings.TrimSpace(strings.Join(out, "\n")) + "\n"
}
