package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cv-builder/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <snapshot.json>",
	Short: "Render a saved session snapshot to HTML",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderOutputFile string
	renderTemplate   string
	renderATS        bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template ID override (t1, t2, t3)")
	renderCmd.Flags().BoolVar(&renderATS, "ats", false, "Force ATS mode")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	snap, err := readSnapshotFile(args[0])
	if err != nil {
		return err
	}

	templateID := snap.UI.SelectedTemplate
	if renderTemplate != "" {
		templateID = renderTemplate
	}
	atsMode := snap.UI.ATSMode
	if cmd.Flags().Changed("ats") {
		atsMode = renderATS
	}

	html, err := render.HTML(snap.Data, templateID, atsMode)
	if err != nil {
		return fmt.Errorf("failed to render CV: %w", err)
	}

	if renderOutputFile != "" {
		if err := os.WriteFile(renderOutputFile, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOutputFile, err)
		}
		return nil
	}

	fmt.Println(html)
	return nil
}
