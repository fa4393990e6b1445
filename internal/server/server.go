// Package server exposes the transfer pipeline over HTTP.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/traydesk/transferdesk/internal/directory"
	"github.com/traydesk/transferdesk/internal/metrics"
	"github.com/traydesk/transferdesk/internal/pipeline"
	"github.com/traydesk/transferdesk/internal/validation"
)

// Server wires the HTTP routes to the pipeline.
type Server struct {
	router    *gin.Engine
	processor *pipeline.Processor
	directory directory.Directory
	validator *validation.SubmissionValidator
	logger    *slog.Logger
	maxUpload int64
}

func NewServer(
	proc *pipeline.Processor,
	dir directory.Directory,
	validator *validation.SubmissionValidator,
	maxUpload int64,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		processor: proc,
		directory: dir,
		validator: validator,
		logger:    logger,
		maxUpload: maxUpload,
	}

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = maxUpload

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.POST("/v1/transfers", s.handleTransfer)

	s.router = router
	return s
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() *gin.Engine {
	return s.router
}
