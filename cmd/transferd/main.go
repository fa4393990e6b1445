package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/traydesk/transferdesk/internal/artifact"
	"github.com/traydesk/transferdesk/internal/common"
	"github.com/traydesk/transferdesk/internal/directory"
	"github.com/traydesk/transferdesk/internal/extract"
	"github.com/traydesk/transferdesk/internal/mailer"
	"github.com/traydesk/transferdesk/internal/pipeline"
	"github.com/traydesk/transferdesk/internal/server"
	"github.com/traydesk/transferdesk/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, closeDir, err := openDirectory(cfg.Directory)
	if err != nil {
		logger.Error("failed to open identity directory", "error", err)
		os.Exit(1)
	}
	defer closeDir()

	validator, err := validation.NewSubmissionValidator()
	if err != nil {
		logger.Error("failed to compile submission schema", "error", err)
		os.Exit(1)
	}

	loader := extract.NewLoader(extract.NewPDFExtractor(), extract.NewImageCodeExtractor(), logger)
	builder := artifact.NewBuilder(cfg.Upload.TempDir, logger)
	dispatcher := mailer.NewSMTPDispatcher(cfg.SMTP, logger)
	proc := pipeline.NewProcessor(loader, builder, dispatcher, logger)

	srv := server.NewServer(proc, dir, validator, cfg.Upload.MaxBytes, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func openDirectory(cfg common.DirectoryConfig) (directory.Directory, func(), error) {
	if cfg.DSN != "" {
		d, err := directory.OpenSQLite(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return d, func() { _ = d.Close() }, nil
	}
	d, err := directory.LoadStatic(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	return d, func() {}, nil
}
