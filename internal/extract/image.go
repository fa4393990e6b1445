package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/traydesk/transferdesk/constants"
)

// ImageCodeExtractor decodes a machine-readable code from a raster image.
type ImageCodeExtractor struct {
	reader gozxing.Reader
}

func NewImageCodeExtractor() *ImageCodeExtractor {
	return &ImageCodeExtractor{reader: qrcode.NewQRCodeReader()}
}

// Extract returns the payload of the first code the decoder locates. An
// image with no decodable code yields empty text with a warning rather than
// an error; only undecodable image bytes fail.
func (e *ImageCodeExtractor) Extract(ctx context.Context, content []byte) (TextExtractionResult, error) {
	start := time.Now()

	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return TextExtractionResult{SourceType: constants.IMAGE}, fmt.Errorf("decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return TextExtractionResult{SourceType: constants.IMAGE}, fmt.Errorf("binarize image: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := e.reader.Decode(bmp, hints)
	if err != nil {
		// no code present; not a failure
		return TextExtractionResult{
			SourceType: constants.IMAGE,
			Method:     "image-code",
			Pages:      1,
			Duration:   time.Since(start),
			Warnings:   []string{"no decodable code found"},
		}, nil
	}

	return TextExtractionResult{
		Text:       result.GetText(),
		Pages:      1,
		SourceType: constants.IMAGE,
		Method:     "image-code",
		Duration:   time.Since(start),
	}, nil
}
