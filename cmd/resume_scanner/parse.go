package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/extraction"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/observability"
	"github.com/jonathan/resume-scanner/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file into structured JSON",
	Long:  "Extract text from a resume file (plain text, PDF, or DOCX) and parse it into a structured resume, printed as JSON.",
	RunE:  runParse,
}

var (
	parseFile     string
	parseOut      string
	parseValidate bool
	parseVerbose  bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to the resume file (required)")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Write JSON to this file instead of stdout")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the output against the resume schema")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed resume to stderr")

	parseCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	text, err := ingestion.FromFile(parseFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	resume := extraction.Parse(text)

	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}

	if parseValidate {
		schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "resume.schema.json"))
		if schemaPath == "" {
			return fmt.Errorf("resume schema not found; run from the repository root")
		}
		schema, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}
		if err := schemas.ValidateBytes(schema, data); err != nil {
			return fmt.Errorf("parsed resume failed schema validation: %w", err)
		}
	}

	if parseVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintResume(resume)
	}

	if parseOut != "" {
		if err := os.WriteFile(parseOut, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", parseOut)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
