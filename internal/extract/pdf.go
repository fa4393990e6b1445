package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/traydesk/transferdesk/constants"
)

// PDFExtractor extracts concatenated page text from a PDF document.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract walks the pages in document order and concatenates their text.
// A page that yields no text contributes an empty substring; no page is
// skipped from the ordering.
func (e *PDFExtractor) Extract(ctx context.Context, content []byte) (TextExtractionResult, error) {
	start := time.Now()
	if len(content) == 0 {
		return TextExtractionResult{SourceType: constants.PDF}, fmt.Errorf("empty pdf content")
	}

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return TextExtractionResult{SourceType: constants.PDF}, fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	var warns []string
	pages := r.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{SourceType: constants.PDF}, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			// unreadable page contributes nothing but keeps its position
			warns = append(warns, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		b.WriteString(txt)
	}

	return TextExtractionResult{
		Text:       b.String(),
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
		Duration:   time.Since(start),
		Warnings:   warns,
	}, nil
}
