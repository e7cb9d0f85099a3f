// Package main provides the entry point for the resume scanner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scanner",
	Short: "Resume extraction and ATS scoring toolkit",
	Long:  "Resume Scanner extracts structured resumes from plain text, PDF, and DOCX files, and scores them for ATS readiness against job descriptions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
