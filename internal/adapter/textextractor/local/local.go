// Package local implements domain.TextExtractor with in-process libraries:
// ledongthuc/pdf for PDF, nguyenthenguyen/docx for OOXML Word documents and
// sanitized passthrough for plain text. It needs no external service, which
// makes it the default extractor when no Tika URL is configured.
package local

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// Extractor dispatches on the original upload's extension.
type Extractor struct{}

// New constructs a local extractor.
func New() *Extractor { return &Extractor{} }

// ExtractPath reads the file at path and returns flattened plain text.
// Legacy .doc binaries are not parseable locally; they require the Tika
// extractor and are reported as unsupported here.
func (e *Extractor) ExtractPath(ctx context.Context, fileName, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read upload: %v", domain.ErrExtraction, err)
	}
	var text string
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".doc":
		return "", fmt.Errorf("%w: legacy .doc requires the tika extractor", domain.ErrUnsupportedFormat)
	case ".txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(fileName))
	}
	if err != nil {
		return "", err
	}
	return textx.Flatten(text), nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", domain.ErrExtraction, err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages that fail to decode are skipped; the minimum-length check
		// downstream rejects documents that yielded no usable text.
		if text, err := page.GetPlainText(nil); err == nil {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parse docx: %v", domain.ErrExtraction, err)
	}
	defer func() { _ = doc.Close() }()
	// Editable content is the raw document XML; strip markup before scoring.
	return xmlTagPattern.ReplaceAllString(doc.Editable().GetContent(), " "), nil
}
