package ingestion

import (
	"context"
	"log"

	"github.com/jonathan/resume-scanner/internal/fetch"
)

// JobDescriptionFromURL fetches a job posting page and returns its main
// content as cleaned plain text, ready for keyword extraction.
func JobDescriptionFromURL(ctx context.Context, urlStr string, verbose bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", &Error{Path: urlStr, Message: "failed to fetch job posting", Cause: err}
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", &Error{Path: urlStr, Message: "failed to extract posting text", Cause: err}
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	return CleanText(text), nil
}
