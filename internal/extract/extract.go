// Package extract pulls plain text out of uploaded CV files so the importer
// can run its heuristics on a single normalized string.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// SupportedExtensions lists the upload formats FromFile accepts.
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt", ".html", ".htm"}

// Supported reports whether a filename carries an extension FromFile handles.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// FromFile extracts plain text from the document at path based on its
// extension. Office formats go through docconv, which shells out to external
// converters for some types.
func FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to convert %s document: %w", ext, err)
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(content), nil
	case ".html", ".htm":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read HTML file: %w", err)
		}
		return FromHTML(string(content))
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// FromReader saves the upload under dir and extracts its text. The saved
// file is removed before returning; only the text survives.
func FromReader(dir, filename string, r io.Reader) (string, error) {
	if !Supported(filename) {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to flush upload: %w", err)
	}
	defer os.Remove(path)

	return FromFile(path)
}

// blockTags are elements whose boundaries become line breaks in the
// extracted text, so section headers and bullets stay on their own lines.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true,
	"tr": true, "table": true,
}

// FromHTML flattens an HTML document to plain text, one line per block
// element. Script and style contents are dropped.
func FromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			writeNodeText(&sb, node)
		}
	})
	if sb.Len() == 0 {
		// Fragment without a body element.
		for _, node := range doc.Nodes {
			writeNodeText(&sb, node)
		}
	}

	lines := make([]string, 0, 32)
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func writeNodeText(sb *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		text := strings.TrimSpace(node.Data)
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeNodeText(sb, child)
	}
	if node.Type == html.ElementNode && blockTags[node.Data] {
		sb.WriteString("\n")
	}
}
