// Package export turns a finished CV into downloadable artifacts: PDF via a
// headless Chrome print, DOCX via document generation. Failures always
// return an error; no partial file is ever produced.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFTimeout bounds one print-to-PDF run including browser startup.
const PDFTimeout = 60 * time.Second

// PDF prints a self-contained HTML document to A4 PDF using headless
// Chrome. The CHROME_PATH environment variable overrides the binary; an
// explicit chromePath argument wins over both.
func PDF(ctx context.Context, html string, chromePath string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, PDFTimeout)
	defer cancelRun()

	// Chrome navigates a file URL instead of a data URL so relative
	// resources keep working if the markup ever references any.
	tmpDir, err := os.MkdirTemp("", "cvwizard-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "cv.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write temp HTML: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			// A4: 210mm x 297mm, which is 8.27 x 11.69 inches.
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}
	return pdfBuf, nil
}
