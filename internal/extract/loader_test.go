package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traydesk/transferdesk/constants"
)

type fakeExtractor struct {
	res TextExtractionResult
	err error
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte) (TextExtractionResult, error) {
	return f.res, f.err
}

func TestLoaderDispatchesPDFByExtension(t *testing.T) {
	pdfEx := &fakeExtractor{res: TextExtractionResult{Text: "pdf text", SourceType: constants.PDF}}
	imgEx := &fakeExtractor{res: TextExtractionResult{Text: "image text", SourceType: constants.IMAGE}}
	l := NewLoader(pdfEx, imgEx, nil)

	res := l.Load(context.Background(), []byte("x"), "scan.pdf")
	assert.Equal(t, "pdf text", res.Text)

	// case-insensitive
	res = l.Load(context.Background(), []byte("x"), "SCAN.PDF")
	assert.Equal(t, "pdf text", res.Text)
}

func TestLoaderDispatchesImageOtherwise(t *testing.T) {
	pdfEx := &fakeExtractor{res: TextExtractionResult{Text: "pdf text"}}
	imgEx := &fakeExtractor{res: TextExtractionResult{Text: "image text"}}
	l := NewLoader(pdfEx, imgEx, nil)

	for _, name := range []string{"photo.png", "photo.jpg", "noext", "weird.bin"} {
		res := l.Load(context.Background(), []byte("x"), name)
		assert.Equal(t, "image text", res.Text, name)
	}
}

func TestLoaderNormalizesFailureToEmpty(t *testing.T) {
	pdfEx := &fakeExtractor{err: errors.New("corrupt document")}
	imgEx := &fakeExtractor{err: errors.New("not an image")}
	l := NewLoader(pdfEx, imgEx, nil)

	res := l.Load(context.Background(), []byte("junk"), "bad.pdf")
	assert.Equal(t, "", res.Text)
	assert.NotEmpty(t, res.Warnings)

	res = l.Load(context.Background(), []byte("junk"), "bad.png")
	assert.Equal(t, "", res.Text)
	assert.NotEmpty(t, res.Warnings)
}

func TestLoaderWithRealExtractorsDegradesOnGarbage(t *testing.T) {
	l := NewLoader(NewPDFExtractor(), NewImageCodeExtractor(), nil)

	res := l.Load(context.Background(), []byte("not a pdf at all"), "upload.pdf")
	assert.Equal(t, "", res.Text)

	res = l.Load(context.Background(), []byte{0x00, 0x01, 0x02}, "upload.png")
	assert.Equal(t, "", res.Text)

	res = l.Load(context.Background(), nil, "empty.pdf")
	assert.Equal(t, "", res.Text)
}
