package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Software Engineer
jane@x.com | 555-123-4567

SUMMARY
Built scalable systems.

EXPERIENCE
Senior Engineer | Acme Corp
Jan 2020 - Present
- Increased throughput by 40%

EDUCATION
MIT
BS Computer Science
2016 - 2020

SKILLS
Go, Python, Kubernetes`

func TestParseSampleResume(t *testing.T) {
	r := Parse(sampleResume)
	require.NotNil(t, r)

	assert.Equal(t, "Jane", r.PersonalInfo.FirstName)
	assert.Equal(t, "Doe", r.PersonalInfo.LastName)
	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, "jane@x.com", r.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", r.PersonalInfo.Phone)
	assert.Equal(t, "Software Engineer", r.PersonalInfo.Title)
	assert.Equal(t, "Built scalable systems.", r.Summary)

	require.Len(t, r.Experience, 1)
	exp := r.Experience[0]
	assert.Equal(t, "Senior Engineer", exp.Position)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Jan 2020", exp.StartDate)
	assert.Equal(t, "Present", exp.EndDate)
	assert.True(t, exp.Current)
	require.Len(t, exp.Achievements, 1)
	assert.Contains(t, exp.Achievements[0], "40%")

	require.Len(t, r.Education, 1)
	edu := r.Education[0]
	assert.Equal(t, "MIT", edu.Institution)
	assert.Equal(t, "BS Computer Science", edu.Degree)
	assert.Equal(t, "2016", edu.StartDate)
	assert.Equal(t, "2020", edu.EndDate)

	var skillNames []string
	for _, s := range r.Skills {
		skillNames = append(skillNames, s.Name)
	}
	assert.Equal(t, []string{"Go", "Python", "Kubernetes"}, skillNames)

	assert.Empty(t, r.Certifications)
	assert.Empty(t, r.Projects)
	assert.Empty(t, r.CustomSections)
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		r := Parse(input)
		require.NotNil(t, r)
		assert.Equal(t, "", r.Name)
		assert.Equal(t, "", r.Summary)
		assert.NotNil(t, r.Experience)
		assert.NotNil(t, r.Education)
		assert.NotNil(t, r.Skills)
		assert.NotNil(t, r.Projects)
		assert.NotNil(t, r.Certifications)
		assert.NotNil(t, r.CustomSections)
		assert.Empty(t, r.Experience)
		assert.Empty(t, r.Skills)
	}
}

func TestParseSectionHeaderAliases(t *testing.T) {
	t.Run("experience aliases", func(t *testing.T) {
		for _, alias := range sectionAliases[sectionExperience] {
			text := "Pat Doe\n" + strings.ToUpper(alias) + "\nEngineer | Acme\nJan 2020 - 2021"
			r := Parse(text)
			require.Len(t, r.Experience, 1, "alias %q", alias)
			assert.Equal(t, "Engineer", r.Experience[0].Position, "alias %q", alias)
			assert.Equal(t, "Acme", r.Experience[0].Company, "alias %q", alias)
		}
	})

	t.Run("skills aliases", func(t *testing.T) {
		for _, alias := range sectionAliases[sectionSkills] {
			text := "Pat Doe\n" + strings.ToUpper(alias) + "\nPython, SQL, Java"
			r := Parse(text)
			assert.Len(t, r.Skills, 3, "alias %q", alias)
		}
	})

	t.Run("summary aliases", func(t *testing.T) {
		for _, alias := range sectionAliases[sectionSummary] {
			text := "Pat Doe\n" + strings.ToUpper(alias) + "\nSeasoned engineer building things."
			r := Parse(text)
			assert.Equal(t, "Seasoned engineer building things.", r.Summary, "alias %q", alias)
		}
	})
}

func TestParseHeaderPunctuationAndSpacing(t *testing.T) {
	r := Parse("Pat Doe\nWORK  EXPERIENCE:\nEngineer | Acme\nJan 2020 - 2021")
	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Acme", r.Experience[0].Company)
}

func TestParseInlineSectionContinuation(t *testing.T) {
	r := Parse("Ann Lee\nSkills: Python, Go, SQL\nExperience\nEngineer at Acme\n2019 - 2021")

	var names []string
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Python", "Go", "SQL"}, names)

	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Engineer", r.Experience[0].Position)
	assert.Equal(t, "Acme", r.Experience[0].Company)
	assert.Equal(t, "2019", r.Experience[0].StartDate)
	assert.Equal(t, "2021", r.Experience[0].EndDate)
	assert.False(t, r.Experience[0].Current)
}

func TestParseSectionBoundedByNextAnchor(t *testing.T) {
	r := Parse("Pat Doe\nSUMMARY\nFirst part.\nSKILLS\nGo, SQL, Rust\nEXPERIENCE\nEngineer | Acme\n2019 - 2020")
	assert.Equal(t, "First part.", r.Summary)
	assert.Len(t, r.Skills, 3)
	assert.Len(t, r.Experience, 1)
}

func TestParseContactDetails(t *testing.T) {
	t.Run("location and title", func(t *testing.T) {
		r := Parse("John Smith\nStaff Engineer\nSeattle, WA\njohn@smith.dev | 555-867-5309")
		assert.Equal(t, "Seattle, WA", r.PersonalInfo.Location)
		assert.Equal(t, "Staff Engineer", r.PersonalInfo.Title)
	})

	t.Run("linkedin and website", func(t *testing.T) {
		r := Parse("Jane Roe\njane@roe.io\nlinkedin.com/in/janeroe\nhttps://janeroe.dev")
		assert.Equal(t, "linkedin.com/in/janeroe", r.PersonalInfo.LinkedIn)
		assert.Equal(t, "https://janeroe.dev", r.PersonalInfo.Website)
	})

	t.Run("no name when first line is an email", func(t *testing.T) {
		r := Parse("jane@x.com\nSome other line")
		assert.Equal(t, "", r.PersonalInfo.FirstName)
		assert.Equal(t, "", r.Name)
		assert.Equal(t, "jane@x.com", r.PersonalInfo.Email)
	})
}

func TestParseSkillsFallbackScan(t *testing.T) {
	// No skills header anywhere, but one delimiter-dense line.
	r := Parse("Bob Jones\nGo, Python, Rust, SQL, Terraform")
	var names []string
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Go", "Python", "Rust", "SQL", "Terraform"}, names)
}

func TestParseCertifications(t *testing.T) {
	r := Parse("Pat Doe\nCERTIFICATIONS\n- AWS Solutions Architect | Amazon\n- CKA\nGoogle Cloud Professional | Google | 2021")
	require.Len(t, r.Certifications, 3)

	assert.Equal(t, "AWS Solutions Architect", r.Certifications[0].Name)
	assert.Equal(t, "Amazon", r.Certifications[0].Issuer)
	assert.Equal(t, "CKA", r.Certifications[1].Name)
	assert.Equal(t, "", r.Certifications[1].Issuer)
	assert.Equal(t, "Google Cloud Professional", r.Certifications[2].Name)
	assert.Equal(t, "Google", r.Certifications[2].Issuer)
}

func TestParseProjects(t *testing.T) {
	text := `Pat Doe
PROJECTS
Chat Server: real-time messaging
Built with websockets, see www.github.com/x/chat
Tech: Go, Redis, Protobuf
Pipeline | ETL tooling for analytics
Tech: Python; Airflow`

	r := Parse(text)
	require.Len(t, r.Projects, 2)

	first := r.Projects[0]
	assert.Equal(t, "Chat Server: real-time messaging", first.Name)
	assert.Equal(t, "Built with websockets, see www.github.com/x/chat", first.Description)
	assert.Equal(t, []string{"Go", "Redis", "Protobuf"}, first.Technologies)
	assert.Equal(t, "www.github.com/x/chat", first.Link)

	second := r.Projects[1]
	assert.Equal(t, "Pipeline | ETL tooling for analytics", second.Name)
	assert.Equal(t, []string{"Python", "Airflow"}, second.Technologies)
}

func TestParseAffiliations(t *testing.T) {
	r := Parse("Pat Doe\nPROFESSIONAL AFFILIATIONS\n- IEEE | ACM\n- IEEE\nSociety of Women Engineers")
	require.Len(t, r.CustomSections, 1)

	sec := r.CustomSections[0]
	assert.Equal(t, "Professional Affiliations", sec.Title)
	assert.Equal(t, []string{"IEEE", "ACM", "Society of Women Engineers"}, sec.Items)
}

func TestParseEmptySectionsStayEmpty(t *testing.T) {
	r := Parse("Pat Doe\nSKILLS\n\nEXPERIENCE")
	assert.Empty(t, r.Skills)
	assert.Empty(t, r.Experience)
}
