package extract

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/traydesk/transferdesk/constants"
)

// Loader selects an extractor by filename extension and normalizes every
// extraction failure to empty text. This degrade-gracefully contract lets
// the rest of the pipeline run to completion on a bad scan instead of
// aborting the request.
type Loader struct {
	pdf    TextExtractor
	image  TextExtractor
	logger *slog.Logger
}

func NewLoader(pdf, image TextExtractor, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{pdf: pdf, image: image, logger: logger}
}

// Load extracts text from the uploaded bytes. A ".pdf" extension
// (case-insensitive) selects the text-document extractor; everything else is
// treated as an image. The returned result always has a usable Text field;
// Load never fails outward.
func (l *Loader) Load(ctx context.Context, content []byte, filename string) TextExtractionResult {
	ext := constants.NormalizeExt(filepath.Ext(filename))

	var res TextExtractionResult
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = l.pdf.Extract(ctx, content)
	default:
		res, err = l.image.Extract(ctx, content)
	}
	if err != nil {
		l.logger.Warn("loader.extract.degraded", "filename", filename, "ext", ext, "error", err)
		return TextExtractionResult{
			SourceType: res.SourceType,
			Warnings:   append(res.Warnings, err.Error()),
		}
	}
	return res
}
