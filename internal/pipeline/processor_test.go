package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/traydesk/transferdesk/internal/artifact"
	"github.com/traydesk/transferdesk/internal/directory"
	"github.com/traydesk/transferdesk/internal/extract"
	"github.com/traydesk/transferdesk/internal/mailer"
	"github.com/traydesk/transferdesk/internal/record"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: s.text, Pages: 1}, s.err
}

// fakeDispatcher records the composed message and whether the attachment
// still existed at send time.
type fakeDispatcher struct {
	outcome        bool
	gotMsg         mailer.Message
	attachmentSeen bool
}

func (f *fakeDispatcher) Send(_ context.Context, msg mailer.Message) bool {
	f.gotMsg = msg
	if _, err := os.Stat(msg.AttachmentPath); err == nil {
		f.attachmentSeen = true
	}
	return f.outcome
}

type failingBuilder struct{}

func (failingBuilder) Build(record.TransferRecord, record.SubmissionContext) (string, error) {
	return "", errors.New("no writable temp location")
}

func sampleSubmission() record.SubmissionContext {
	return record.SubmissionContext{
		Username:   "john",
		TrayType:   "Standard",
		Quantity:   "5",
		CapturedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newProcessor(t *testing.T, text string, extErr error, disp mailer.Dispatcher) (*Processor, string) {
	t.Helper()
	dir := t.TempDir()
	stub := &stubExtractor{text: text, err: extErr}
	loader := extract.NewLoader(stub, stub, nil)
	builder := artifact.NewBuilder(dir, nil)
	return NewProcessor(loader, builder, disp, nil), dir
}

func TestProcessEndToEnd(t *testing.T) {
	disp := &fakeDispatcher{outcome: true}
	text := "Order: 1001\nDate: 2024-05-01\nCustomer: Acme\nAddress: 1 Main St"
	p, dir := newProcessor(t, text, nil, disp)

	res, err := p.Process(context.Background(),
		Upload{Content: []byte("x"), Filename: "scan.pdf"},
		sampleSubmission(),
		directory.Entry{Name: "John", Email: "john@example.com"},
	)

	assert.NoError(t, err)
	assert.Equal(t, "1001", res.Record.OrderNumber)
	assert.Equal(t, "2024-05-01", res.Record.Date)
	assert.Equal(t, "Acme", res.Record.Customer)
	assert.Equal(t, "1 Main St", res.Record.Address)
	assert.False(t, res.Degraded)
	assert.True(t, res.Notified)

	assert.Equal(t, "Transfer Order - 1001", disp.gotMsg.Subject)
	assert.Equal(t, "john@example.com", disp.gotMsg.To)
	assert.True(t, disp.attachmentSeen, "artifact must exist at send time")

	// artifact deleted after dispatch
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, res.ArtifactName, filepath.Base(disp.gotMsg.AttachmentPath))
}

func TestProcessDegradedExtractionStillProducesArtifact(t *testing.T) {
	disp := &fakeDispatcher{outcome: true}
	p, dir := newProcessor(t, "", errors.New("corrupt scan"), disp)

	res, err := p.Process(context.Background(),
		Upload{Content: []byte("junk"), Filename: "bad.png"},
		sampleSubmission(),
		directory.Entry{Name: "Jane", Email: "jane@example.com"},
	)

	assert.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.Equal(t, record.NewTransferRecord(), res.Record)
	assert.Equal(t, "Transfer Order - N/A", disp.gotMsg.Subject)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestProcessDispatchFailureIsNotAnError(t *testing.T) {
	disp := &fakeDispatcher{outcome: false}
	p, dir := newProcessor(t, "Order: 7", nil, disp)

	res, err := p.Process(context.Background(),
		Upload{Content: []byte("x"), Filename: "scan.pdf"},
		sampleSubmission(),
		directory.Entry{Name: "John", Email: "john@example.com"},
	)

	assert.NoError(t, err)
	assert.False(t, res.Notified)

	// cleanup must not be skipped merely because notification failed
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestProcessArtifactBuildFailureIsFatal(t *testing.T) {
	disp := &fakeDispatcher{outcome: true}
	stub := &stubExtractor{text: "Order: 1"}
	loader := extract.NewLoader(stub, stub, nil)
	p := NewProcessor(loader, failingBuilder{}, disp, nil)

	_, err := p.Process(context.Background(),
		Upload{Content: []byte("x"), Filename: "scan.pdf"},
		sampleSubmission(),
		directory.Entry{Name: "John", Email: "john@example.com"},
	)

	assert.Error(t, err)
	assert.Empty(t, disp.gotMsg.To, "dispatch must not run without an artifact")
}
