package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cv-builder/internal/export"
	"cv-builder/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export <snapshot.json>",
	Short: "Export a saved session snapshot to PDF and/or DOCX",
	Long:  "Renders the CV in a saved snapshot and writes PDF and DOCX files. PDF export requires a headless Chrome binary (CHROME_PATH).",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportOutputDir  string
	exportPDFOnly    bool
	exportDOCXOnly   bool
	exportChromePath string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "out-dir", "o", ".", "Output directory")
	exportCmd.Flags().BoolVar(&exportPDFOnly, "pdf", false, "Export PDF only")
	exportCmd.Flags().BoolVar(&exportDOCXOnly, "docx", false, "Export DOCX only")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome-path", "", "Headless Chrome binary (overrides CHROME_PATH)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	snap, err := readSnapshotFile(args[0])
	if err != nil {
		return err
	}

	doPDF := !exportDOCXOnly
	doDOCX := !exportPDFOnly
	if exportPDFOnly && exportDOCXOnly {
		doPDF, doDOCX = true, true
	}

	chromePath := exportChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}

	if err := os.MkdirAll(exportOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	first := snap.Data.Identity.FirstName
	last := snap.Data.Identity.LastName

	// Both formats render independently, so export them in parallel.
	g, ctx := errgroup.WithContext(cmd.Context())

	if doPDF {
		g.Go(func() error {
			html, err := render.HTML(snap.Data, snap.UI.SelectedTemplate, snap.UI.ATSMode)
			if err != nil {
				return fmt.Errorf("failed to render CV: %w", err)
			}
			pdf, err := export.PDF(ctx, html, chromePath)
			if err != nil {
				return fmt.Errorf("PDF export failed: %w", err)
			}
			path := filepath.Join(exportOutputDir, export.Filename(first, last, "pdf"))
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}

	if doDOCX {
		g.Go(func() error {
			doc, err := export.DOCX(snap.Data)
			if err != nil {
				return fmt.Errorf("DOCX export failed: %w", err)
			}
			path := filepath.Join(exportOutputDir, export.Filename(first, last, "docx"))
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		})
	}

	return g.Wait()
}
