// Package main provides the entry point for the CV wizard.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvwizard",
	Short: "Conversational CV builder",
	Long:  "CV wizard builds a structured CV through a guided interview, imports existing resumes from free text or files, and exports the result as HTML, PDF or DOCX.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
