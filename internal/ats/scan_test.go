package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongResume = `Jane Doe
Senior Software Engineer
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe

PROFESSIONAL SUMMARY
Engineer with ten years of experience building distributed systems.

EXPERIENCE
Senior Engineer | Acme Corp
Jan 2020 - Present
- Cut p99 latency by 40% across the ingestion pipeline
- Saved $200K annually by consolidating build infrastructure

EDUCATION
BS Computer Science, MIT, 2016

SKILLS
Go, Python, Kubernetes, Terraform

CERTIFICATIONS
- AWS Solutions Architect`

func TestScanStrongResume(t *testing.T) {
	result := Scan(strongResume, "")
	require.NotNil(t, result)

	assert.Equal(t, 20, result.Breakdown.Contact)
	assert.Equal(t, 40, result.Breakdown.Sections)
	assert.Equal(t, 0, result.Breakdown.Keywords, "no job description means no keyword points")
	assert.Equal(t, 5, result.Breakdown.Formatting, "bullets present, word count under range")
	assert.Equal(t, 65, result.Score)

	assert.True(t, result.Signals.Email)
	assert.True(t, result.Signals.Phone)
	assert.True(t, result.Signals.LinkedIn)
	assert.True(t, result.Signals.HasSummary)
	assert.True(t, result.Signals.HasExperience)
	assert.True(t, result.Signals.HasEducation)
	assert.True(t, result.Signals.HasSkills)
	assert.True(t, result.Signals.HasCerts)
	assert.True(t, result.Signals.HasBullets)
	assert.Equal(t, 2, result.Signals.QuantifiedBulletCount, "the AWS bullet carries no number")

	assert.Empty(t, result.Suggestions)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)
}

func TestScanParsedResumeText(t *testing.T) {
	text := "Jane Doe\nSoftware Engineer\njane@x.com | 555-123-4567\n\nSUMMARY\nBuilt scalable systems.\n\n" +
		"EXPERIENCE\nSenior Engineer | Acme Corp\nJan 2020 - Present\n- Increased throughput by 40%\n\n" +
		"EDUCATION\nMIT\nBS Computer Science\n2016 - 2020\n\nSKILLS\nGo, Python, Kubernetes"

	result := Scan(text, "")

	assert.True(t, result.Signals.Email)
	assert.True(t, result.Signals.Phone)
	assert.True(t, result.Signals.HasSummary)
	assert.True(t, result.Signals.HasExperience)
	assert.True(t, result.Signals.HasEducation)
	assert.True(t, result.Signals.HasSkills)
	assert.True(t, result.Signals.HasBullets)
	assert.GreaterOrEqual(t, result.Signals.QuantifiedBulletCount, 1)

	// No LinkedIn and under 250 words: 14 contact + 40 sections + 5 formatting.
	assert.Equal(t, 59, result.Score)
}

func TestScanEmptyInput(t *testing.T) {
	result := Scan("", "")
	require.NotNil(t, result)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, 0, result.Breakdown.Contact)
	assert.Equal(t, 0, result.Breakdown.Sections)
	assert.Equal(t, 0, result.Breakdown.Keywords)
	assert.Equal(t, 0, result.Breakdown.Formatting)
	assert.Len(t, result.Suggestions, 8)
	assert.Equal(t, "Add a professional email address in the header.", result.Suggestions[0])
}

func TestScanKeywordMatching(t *testing.T) {
	resume := "SKILLS\nDocker and Golang, plenty of production work with both"
	jd := "kubernetes kubernetes kubernetes docker docker golang and the with"

	result := Scan(resume, jd)

	assert.Equal(t, []string{"docker", "golang"}, result.MatchedKeywords)
	assert.Equal(t, []string{"kubernetes"}, result.MissingKeywords)
	assert.InDelta(t, 2.0/3.0, result.Signals.KeywordCoverage, 1e-9)
	assert.Equal(t, 20, result.Breakdown.Keywords, "round(2/3 * 30)")
	assert.Contains(t, result.Suggestions, "Add missing keywords naturally into skills and experience bullets.")
}

func TestScanScoreNeverDropsWhenKeywordAdded(t *testing.T) {
	resume := "SKILLS\nDocker and Golang"
	jd := "kubernetes kubernetes docker golang terraform"

	before := Scan(resume, jd)
	after := Scan(resume+"\nKubernetes", jd)

	assert.GreaterOrEqual(t, after.Score, before.Score)
	assert.Greater(t, after.Breakdown.Keywords, before.Breakdown.Keywords)
}

func TestScanScoreBounds(t *testing.T) {
	inputs := []struct {
		name   string
		resume string
		jd     string
	}{
		{"empty", "", ""},
		{"garbage", "!!!@@@###", "$$$%%%"},
		{"strong with jd", strongResume, "go kubernetes terraform python"},
		{"very long", strings.Repeat("word ", 5000), ""},
		{"unicode", "résumé • naïve — 章节", "unicode handling"},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			result := Scan(tt.resume, tt.jd)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			sum := result.Breakdown.Contact + result.Breakdown.Sections +
				result.Breakdown.Keywords + result.Breakdown.Formatting
			assert.Equal(t, sum, result.Score, "score is the sum of its categories")
		})
	}
}

func TestScanWordCountFormatting(t *testing.T) {
	// 300 words, no bullets: length points only.
	resume := "EXPERIENCE\n" + strings.Repeat("shipped software ", 150)
	result := Scan(resume, "")

	assert.GreaterOrEqual(t, result.WordCount, 250)
	assert.LessOrEqual(t, result.WordCount, 1200)
	assert.False(t, result.Signals.HasBullets)
	assert.Equal(t, 5, result.Breakdown.Formatting)
	assert.Contains(t, result.Suggestions, "Use bullet points for achievements (improves ATS readability).")
}

func TestScanUnquantifiedBulletsSuggestion(t *testing.T) {
	resume := "EXPERIENCE\n- Improved things\n- Helped the team ship faster"
	result := Scan(resume, "")

	assert.True(t, result.Signals.HasBullets)
	assert.Equal(t, 0, result.Signals.QuantifiedBulletCount)
	assert.Contains(t, result.Suggestions, "Quantify impact in bullets (numbers, %, $, time saved).")
}

func TestExtractKeywords(t *testing.T) {
	t.Run("frequency order", func(t *testing.T) {
		jd := "kubernetes kubernetes kubernetes docker docker terraform and the with"
		assert.Equal(t, []string{"kubernetes", "docker", "terraform"}, ExtractKeywords(jd, 0))
	})

	t.Run("equal frequencies all survive", func(t *testing.T) {
		jd := "alpha beta alpha beta gamma"
		assert.ElementsMatch(t, []string{"alpha", "beta", "gamma"}, ExtractKeywords(jd, 0))
	})

	t.Run("short tokens and stopwords dropped", func(t *testing.T) {
		jd := "go is a and ml sql"
		assert.Equal(t, []string{"sql"}, ExtractKeywords(jd, 0))
	})

	t.Run("limit applies after ranking", func(t *testing.T) {
		jd := "kubernetes kubernetes kubernetes docker docker terraform"
		assert.Equal(t, []string{"kubernetes", "docker"}, ExtractKeywords(jd, 2))
	})

	t.Run("technical punctuation survives", func(t *testing.T) {
		jd := "c++ c++ ci/cd experienced engineer"
		got := ExtractKeywords(jd, 0)
		assert.Contains(t, got, "c++")
		assert.Contains(t, got, "ci/cd")
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ExtractKeywords("", 0))
	})
}
