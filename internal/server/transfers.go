package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/traydesk/transferdesk/constants"
	"github.com/traydesk/transferdesk/internal/common"
	"github.com/traydesk/transferdesk/internal/pipeline"
	"github.com/traydesk/transferdesk/internal/record"
)

// transferResponse is the JSON body returned for a processed submission.
type transferResponse struct {
	Record   record.TransferRecord `json:"record"`
	Artifact string                `json:"artifact"`
	Degraded bool                  `json:"degraded"`
	Notified bool                  `json:"notified"`
}

func (s *Server) handleTransfer(c *gin.Context) {
	ctx := common.WithRequestID(c.Request.Context(), uuid.NewString())

	accessCode := strings.TrimSpace(c.PostForm("access_code"))
	if accessCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "access_code is required"})
		return
	}
	ctx = common.WithAccessCode(ctx, accessCode)

	trayType := strings.TrimSpace(c.PostForm("tray_type"))
	quantity := strings.TrimSpace(c.PostForm("quantity"))
	if err := s.validator.Validate(trayType, quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := s.directory.Resolve(ctx, accessCode)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown access code"})
			return
		}
		s.logger.Error("server.directory.failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "directory lookup failed"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size > s.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}
	if !constants.AllowedExt(filepath.Ext(fh.Filename)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.logger.Error("server.upload.open_failed", "filename", fh.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		s.logger.Error("server.upload.read_failed", "filename", fh.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}

	sub := record.SubmissionContext{
		Username:   entry.Name,
		TrayType:   trayType,
		Quantity:   quantity,
		CapturedAt: time.Now(),
	}

	s.logger.Info("server.transfer.start",
		"request_id", common.RequestIDFromContext(ctx),
		"username", entry.Name,
		"filename", fh.Filename,
		"tray_type", trayType,
		"quantity", quantity,
	)

	res, err := s.processor.Process(ctx, pipeline.Upload{Content: content, Filename: fh.Filename}, sub, entry)
	if err != nil {
		// artifact build failed: no usable output exists for this request
		c.JSON(http.StatusInternalServerError, gin.H{"error": "artifact build failed"})
		return
	}

	c.JSON(http.StatusOK, transferResponse{
		Record:   res.Record,
		Artifact: res.ArtifactName,
		Degraded: res.Degraded,
		Notified: res.Notified,
	})
}
