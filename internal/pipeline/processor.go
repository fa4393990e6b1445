// Package pipeline coordinates the per-request transfer flow:
// load → parse → build artifact → dispatch notification.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/traydesk/transferdesk/internal/directory"
	"github.com/traydesk/transferdesk/internal/extract"
	"github.com/traydesk/transferdesk/internal/mailer"
	"github.com/traydesk/transferdesk/internal/metrics"
	"github.com/traydesk/transferdesk/internal/parse"
	"github.com/traydesk/transferdesk/internal/record"
)

// Upload is the raw input of one request.
type Upload struct {
	Content  []byte
	Filename string
}

// ArtifactBuilder materializes a record as a tabular file and returns its path.
type ArtifactBuilder interface {
	Build(rec record.TransferRecord, sub record.SubmissionContext) (string, error)
}

// Result is the caller-visible outcome of one processed submission.
// A Result is only produced when an artifact was built; the "could not
// produce a record at all" case surfaces as an error from Process instead.
type Result struct {
	Record       record.TransferRecord
	ArtifactName string
	Degraded     bool
	Notified     bool
}

// Processor runs the pipeline synchronously, one request at a time. It owns
// the artifact's lifecycle: the file is deleted on every exit path where it
// exists, regardless of dispatch outcome.
type Processor struct {
	Loader     *extract.Loader
	Builder    ArtifactBuilder
	Dispatcher mailer.Dispatcher
	Logger     *slog.Logger
}

func NewProcessor(loader *extract.Loader, builder ArtifactBuilder, dispatcher mailer.Dispatcher, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Loader: loader, Builder: builder, Dispatcher: dispatcher, Logger: logger}
}

// Process extracts text from the upload, parses it into a record, builds the
// artifact, and attempts one notification send to the resolved recipient.
// The only error it returns is an artifact-build failure; degraded
// extraction and dispatch failure are carried in the Result.
func (p *Processor) Process(ctx context.Context, up Upload, sub record.SubmissionContext, recipient directory.Entry) (Result, error) {
	start := time.Now()
	metrics.TransfersTotal.Inc()

	// 1) Extraction; failures degrade to empty text inside the loader.
	ext := p.Loader.Load(ctx, up.Content, up.Filename)
	if ext.Text == "" {
		metrics.TransfersDegradedTotal.Inc()
		p.Logger.Warn("processor.extract.degraded", "filename", up.Filename, "warnings", ext.Warnings)
	} else {
		p.Logger.Info("processor.extract.ok",
			"filename", up.Filename,
			"source_type", ext.SourceType,
			"method", ext.Method,
			"pages", ext.Pages,
			"text_bytes", len(ext.Text),
		)
	}

	// 2) Parse; total and deterministic, unset fields stay empty.
	rec := parse.ParseTransferInfo(ext.Text)

	// 3) Artifact build; the one fatal failure of the pipeline.
	path, err := p.Builder.Build(rec, sub)
	if err != nil {
		metrics.ArtifactFailuresTotal.Inc()
		p.Logger.Error("processor.artifact.failed", "error", err)
		return Result{}, err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil {
			p.Logger.Warn("processor.artifact.cleanup_failed", "path", path, "error", rmErr)
		}
	}()

	// 4) Dispatch; one attempt, boolean outcome, never raises.
	msg := mailer.Compose(rec, sub, recipient.Email, path)
	notified := p.Dispatcher.Send(ctx, msg)
	if !notified {
		metrics.DispatchFailuresTotal.Inc()
	}

	metrics.ProcessingDuration.Observe(time.Since(start).Seconds())
	p.Logger.Info("processor.done",
		"order_number", rec.OrderNumber,
		"notified", notified,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return Result{
		Record:       rec,
		ArtifactName: filepath.Base(path),
		Degraded:     ext.Text == "",
		Notified:     notified,
	}, nil
}
