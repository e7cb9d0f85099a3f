// Package types provides type definitions for structured data used throughout the resume-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// PersonalInfo holds contact details detected in a resume. Every field is
// best-effort: an empty string means "not detected", never an error.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedIn,omitempty"`
	Website   string `json:"website,omitempty"`
	Title     string `json:"title"`
}

// Experience represents a dated role reconstructed from resume text.
// Current is true iff the end marker reads "Present"/"Current" rather than a literal date.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education represents a degree or program. Institution and degree are
// independently optional, but a record with neither is dropped.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
}

// SkillLevel is a coarse proficiency rating.
type SkillLevel string

// Skill proficiency levels. Free-form resume text almost never states
// proficiency, so inferred skills default to SkillIntermediate.
const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Skill represents a single named skill.
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Certification represents a certificate or license entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Expiry string `json:"expiry,omitempty"`
}

// Project represents a project entry with an optional technology list and link.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// CustomSection holds content from a recognized section that has no
// dedicated category, e.g. "Professional Affiliations".
type CustomSection struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Resume is the extraction result: a pure value object owned by the caller.
// The extraction engine assigns no identity beyond per-entry opaque IDs and
// holds no state between calls.
type Resume struct {
	Name           string          `json:"name"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	CustomSections []CustomSection `json:"customSections"`
}

// NewID returns an opaque unique token for entity IDs.
func NewID() string {
	return uuid.NewString()
}
