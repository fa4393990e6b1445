// Package artifact materializes one transfer record as a single-row XLSX
// workbook at a collision-free temporary path.
package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/traydesk/transferdesk/constants"
	"github.com/traydesk/transferdesk/internal/record"
)

const sheet = "Transfer"

// headers define the artifact's column set and order. Exactly one header
// row and one data row are ever written.
var headers = []string{
	"OrderNumber",
	"Date",
	"Customer",
	"Address",
	"Username",
	"TrayType",
	"Quantity",
	"Status",
	"Timestamp",
}

// Builder writes transfer artifacts into TempDir (os.TempDir when empty).
type Builder struct {
	TempDir string
	logger  *slog.Logger
}

func NewBuilder(tempDir string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{TempDir: tempDir, logger: logger}
}

// Build merges the record and submission context into the fixed 9-column
// row and writes the workbook. The returned path is owned exclusively by
// the caller, who is responsible for deleting it. A build failure is the
// one fatal error of the pipeline: no artifact exists afterwards.
func (b *Builder) Build(rec record.TransferRecord, sub record.SubmissionContext) (string, error) {
	start := time.Now()

	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("drop default sheet: %w", err)
	}

	values := []string{
		rec.OrderNumber,
		rec.Date,
		rec.Customer,
		rec.Address,
		sub.Username,
		sub.TrayType,
		sub.Quantity,
		string(constants.ArtifactStatusPending),
		sub.CapturedAt.Format(constants.TimestampLayout),
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", fmt.Errorf("write header %q: %w", h, err)
		}
		cell, _ = excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheet, cell, values[i]); err != nil {
			return "", fmt.Errorf("write cell %d: %w", i+1, err)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "D", 28)
	_ = f.SetColWidth(sheet, "I", "I", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("xlsx write: %w", err)
	}

	dir := b.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("transfer-%s.xlsx", uuid.NewString()))
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	b.logger.Info("artifact.build.ok",
		"path", path,
		"order_number", rec.OrderNumber,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return path, nil
}
