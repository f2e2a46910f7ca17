package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cv-builder/internal/extract"
	"cv-builder/internal/importer"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a CV file or stdin into a structured draft",
	Long:  "Runs the heuristic free-text parser on a CV document (pdf, docx, doc, rtf, odt, txt, html) or on text piped to stdin, and prints the detected draft as JSON.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var parseOutputFile string

func init() {
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	var (
		text string
		err  error
	)
	if len(args) == 1 {
		text, err = extract.FromFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(raw)
	}

	draft := importer.ParseFreeText(text)
	if draft == nil {
		return fmt.Errorf("no usable content found")
	}

	out, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", parseOutputFile, err)
		}
		fmt.Fprintln(os.Stderr, importer.Preview(draft))
		return nil
	}

	fmt.Println(string(out))
	return nil
}
