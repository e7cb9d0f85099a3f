package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scanner/internal/ats"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/observability"
	"github.com/jonathan/resume-scanner/internal/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [resume files...]",
	Short: "Score resume files for ATS readiness",
	Long:  "Extract text from one or more resume files and score each against an optional job description. Multiple files are scanned concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

var (
	scanJDFile  string
	scanJDURL   string
	scanJDText  string
	scanJSON    bool
	scanVerbose bool
)

func init() {
	scanCmd.Flags().StringVar(&scanJDFile, "jd-file", "", "Path to a job description text file")
	scanCmd.Flags().StringVar(&scanJDURL, "jd-url", "", "URL of a job posting to fetch the description from")
	scanCmd.Flags().StringVar(&scanJDText, "jd-text", "", "Job description given inline")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print results as JSON")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Enable verbose logging")

	scanCmd.MarkFlagsMutuallyExclusive("jd-file", "jd-url", "jd-text")

	rootCmd.AddCommand(scanCmd)
}

// scanOutput pairs a scan result with the file it came from.
type scanOutput struct {
	File   string            `json:"file"`
	Result *types.ScanResult `json:"result"`
}

func runScan(cmd *cobra.Command, args []string) error {
	jobDescription, err := loadJobDescription(cmd)
	if err != nil {
		return err
	}

	results := make([]scanOutput, len(args))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)

	for i, file := range args {
		g.Go(func() error {
			text, err := ingestion.FromFile(file)
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", file, err)
			}
			result := ats.Scan(text, jobDescription)

			mu.Lock()
			results[i] = scanOutput{File: file, Result: result}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Worst scores first, so the resume needing work is on top
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Result.Score < results[b].Result.Score
	})

	if scanJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", r.File)
		printer.PrintScanResult(r.Result)
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// loadJobDescription resolves the job description from whichever source
// flag was given; an empty string means keyword scoring is skipped.
func loadJobDescription(cmd *cobra.Command) (string, error) {
	switch {
	case scanJDText != "":
		return ingestion.CleanText(scanJDText), nil
	case scanJDFile != "":
		text, err := ingestion.FromFile(scanJDFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return text, nil
	case scanJDURL != "":
		text, err := ingestion.JobDescriptionFromURL(cmd.Context(), scanJDURL, scanVerbose)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return text, nil
	default:
		return "", nil
	}
}
