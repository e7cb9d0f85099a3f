package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/assist"
	"github.com/jonathan/resume-scanner/internal/config"
	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/llm"
)

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Generate resume content with the configured model",
	Long:  "Generate a professional summary, rewritten achievement bullets, or a cover letter from an existing resume using Gemini. Requires GEMINI_API_KEY.",
	RunE:  runAssist,
}

var (
	assistMode   string
	assistFile   string
	assistJDFile string
	assistConfig string
)

func init() {
	assistCmd.Flags().StringVarP(&assistMode, "mode", "m", "summary", "What to generate: summary, achievements, or cover-letter")
	assistCmd.Flags().StringVarP(&assistFile, "file", "f", "", "Path to the resume file (required)")
	assistCmd.Flags().StringVar(&assistJDFile, "jd-file", "", "Path to a job description to target")
	assistCmd.Flags().StringVarP(&assistConfig, "config", "c", "", "Path to a JSON config file")

	assistCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(assistCmd)
}

func runAssist(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if assistConfig != "" {
		var err error
		if cfg, err = config.LoadConfig(assistConfig); err != nil {
			return err
		}
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	resumeText, err := ingestion.FromFile(assistFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	var jobDescription string
	if assistJDFile != "" {
		jobDescription, err = ingestion.FromFile(assistJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}

	client, err := llm.NewClient(cmd.Context(), nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	content, err := assist.Improve(cmd.Context(), client, assist.Mode(assistMode), resumeText, jobDescription)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), content)
	return nil
}
