package extract

import (
	"context"
	"time"
)

// TextExtractor turns raw document bytes into text.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "image-code"
	Duration   time.Duration
	Warnings   []string
}
