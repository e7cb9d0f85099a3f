// Package assist generates ATS-friendly resume content from existing
// resume text using the configured language model.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-scanner/internal/llm"
)

// Mode selects the kind of content to generate.
type Mode string

const (
	// ModeSummary writes a short professional summary.
	ModeSummary Mode = "summary"
	// ModeAchievements rewrites experience bullets with measurable impact.
	ModeAchievements Mode = "achievements"
	// ModeCoverLetter drafts a cover letter from the resume.
	ModeCoverLetter Mode = "cover-letter"
)

const systemPreamble = "You are an assistant that writes ATS-friendly resume content. " +
	"Keep output concise and professional. Do not invent employers, degrees, or certifications. " +
	"If there is insufficient data, ask for the missing inputs instead of hallucinating."

// tierFor maps each mode to the cheapest tier that does it well. Bullet
// rewording is short, summaries need structured judgment, and cover
// letters are long-form.
func tierFor(mode Mode) llm.ModelTier {
	switch mode {
	case ModeAchievements:
		return llm.TierLite
	case ModeCoverLetter:
		return llm.TierAdvanced
	default:
		return llm.TierStandard
	}
}

// Improve generates content of the requested mode from the supplied resume
// text. jobDescription is optional and, when present, steers the output
// toward the target role.
func Improve(ctx context.Context, client llm.Client, mode Mode, resumeText, jobDescription string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("resume text is required")
	}

	switch mode {
	case ModeSummary:
		return generateText(ctx, client, mode, summaryPrompt(resumeText, jobDescription))
	case ModeAchievements:
		return generateAchievements(ctx, client, resumeText, jobDescription)
	case ModeCoverLetter:
		return generateText(ctx, client, mode, coverLetterPrompt(resumeText, jobDescription))
	default:
		return "", fmt.Errorf("unsupported assist mode: %q", mode)
	}
}

func generateText(ctx context.Context, client llm.Client, mode Mode, prompt string) (string, error) {
	out, err := client.GenerateContent(ctx, prompt, tierFor(mode))
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", mode, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("model returned empty %s", mode)
	}
	return out, nil
}

// generateAchievements asks for a JSON array of rewritten bullets and
// renders them as bullet lines, so downstream scans pick them up.
func generateAchievements(ctx context.Context, client llm.Client, resumeText, jobDescription string) (string, error) {
	raw, err := client.GenerateJSON(ctx, achievementsPrompt(resumeText, jobDescription), tierFor(ModeAchievements))
	if err != nil {
		return "", fmt.Errorf("failed to generate achievements: %w", err)
	}

	var bullets []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &bullets); err != nil {
		return "", fmt.Errorf("failed to parse achievements response: %w", err)
	}

	var lines []string
	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		lines = append(lines, "- "+b)
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("model returned no achievements")
	}
	return strings.Join(lines, "\n"), nil
}

func summaryPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\nWrite a 3-5 sentence professional summary based on this resume. ")
	b.WriteString("Return ONLY the summary text (no quotes, no headings).\n\nResume:\n")
	b.WriteString(resumeText)
	appendJobDescription(&b, jobDescription)
	return b.String()
}

func achievementsPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\nRewrite the experience bullet points from this resume as concise, ")
	b.WriteString("quantified achievement statements that start with a strong verb. ")
	b.WriteString("Keep every employer and date exactly as given. ")
	b.WriteString("Return ONLY a JSON array of strings, one per bullet.\n\nResume:\n")
	b.WriteString(resumeText)
	appendJobDescription(&b, jobDescription)
	return b.String()
}

func coverLetterPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	b.WriteString("\n\nWrite a one-page cover letter (3-4 short paragraphs) based on this resume. ")
	b.WriteString("Use only facts that appear in the resume. ")
	b.WriteString("Return ONLY the letter body (no address block, no placeholders).\n\nResume:\n")
	b.WriteString(resumeText)
	appendJobDescription(&b, jobDescription)
	return b.String()
}

func appendJobDescription(b *strings.Builder, jobDescription string) {
	if strings.TrimSpace(jobDescription) == "" {
		return
	}
	b.WriteString("\n\nTarget job description:\n")
	b.WriteString(jobDescription)
}
