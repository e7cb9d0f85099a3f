package ats

import "github.com/jonathan/resume-scanner/internal/types"

// buildSuggestions turns missing signals into a fixed-order list of
// concrete improvements.
func buildSuggestions(s types.ScanSignals, hasJD, hasMissing bool) []string {
	out := make([]string, 0, 4)
	if !s.Email {
		out = append(out, "Add a professional email address in the header.")
	}
	if !s.Phone {
		out = append(out, "Add a phone number in the header.")
	}
	if !s.LinkedIn {
		out = append(out, "Add a LinkedIn URL (optional but recommended).")
	}
	if !s.HasSummary {
		out = append(out, `Add a short "Summary" section (3-5 lines).`)
	}
	if !s.HasExperience {
		out = append(out, `Add an "Experience" section with role, company, dates, and bullet achievements.`)
	}
	if !s.HasEducation {
		out = append(out, `Add an "Education" section (degree, school, year).`)
	}
	if !s.HasSkills {
		out = append(out, `Add a "Skills" section aligned with the job description.`)
	}
	if !s.HasBullets {
		out = append(out, "Use bullet points for achievements (improves ATS readability).")
	}
	if s.HasBullets && s.QuantifiedBulletCount == 0 {
		out = append(out, "Quantify impact in bullets (numbers, %, $, time saved).")
	}
	if hasJD && hasMissing {
		out = append(out, "Add missing keywords naturally into skills and experience bullets.")
	}
	return out
}
