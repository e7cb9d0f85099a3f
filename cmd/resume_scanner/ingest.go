package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a file or URL",
	Long:  "Ingest a job posting from a text file or URL, clean the content, and write the cleaned text with a metadata sidecar.",
	RunE:  runIngest,
}

var (
	ingestFile    string
	ingestURL     string
	ingestOut     string
	ingestVerbose bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to a file containing the job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Enable verbose logging")

	ingestCmd.MarkFlagRequired("out")
	ingestCmd.MarkFlagsMutuallyExclusive("file", "url")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestFile == "" && ingestURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}

	var cleanedText, source string
	var err error

	if ingestFile != "" {
		source = ingestFile
		cleanedText, err = ingestion.FromFile(ingestFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		source = ingestURL
		cleanedText, err = ingestion.JobDescriptionFromURL(cmd.Context(), ingestURL, ingestVerbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := os.MkdirAll(ingestOut, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := filepath.Join(ingestOut, "job_posting.cleaned.txt")
	if err := os.WriteFile(textPath, []byte(cleanedText+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}

	metadata := ingestion.NewMetadata(cleanedText, source)
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	metaPath := filepath.Join(ingestOut, "job_posting.meta.json")
	if err := os.WriteFile(metaPath, append(metaJSON, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully ingested job posting\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned text: %s\n", textPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Metadata: %s\n", metaPath)

	return nil
}
