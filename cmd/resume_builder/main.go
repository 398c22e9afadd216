// Package main provides the entry point for the Resume Builder HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder HTTP server",
	Long:  "Resume Builder serves the resume editing API: AI-assisted resume parsing, template rendering, and plain-text, PDF, and DOCX exports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
