package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/NITHIN-BHAT/MedGPT/config"
	"github.com/NITHIN-BHAT/MedGPT/data"
	"github.com/NITHIN-BHAT/MedGPT/docextract"
	"github.com/NITHIN-BHAT/MedGPT/gemini"
	"github.com/NITHIN-BHAT/MedGPT/handlers"
	"github.com/NITHIN-BHAT/MedGPT/health"
	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/medicines"
	"github.com/NITHIN-BHAT/MedGPT/scheduler"
	"github.com/NITHIN-BHAT/MedGPT/server"
	"github.com/NITHIN-BHAT/MedGPT/validation"
)

func main() {
	// .env is optional, environment variables may come from the host
	if err := godotenv.Load(); err != nil {
		logging.Warn("No .env file found, using host environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogLevel, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)

	container := data.NewDataContainer()
	container.SetServerStartTime(time.Now())

	validator := validation.NewValidator()

	// The reference table is optional: without it matching degrades but
	// completions still work.
	records, err := medicines.Load(cfg.DataPath)
	if err != nil {
		logging.Warn("Could not load medicine dataset, starting degraded",
			"path", cfg.DataPath, "error", err)
	}
	for _, r := range records {
		if err := validator.ValidateRecord(r.ID, r.Name, r.Generic); err != nil {
			logging.Warn("Dataset record failed validation", "error", err)
		}
	}
	container.SetStore(medicines.NewStore(records))
	logging.Info("Medicine dataset loaded", "records", container.GetStore().Len())

	// The completion client is not optional.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := gemini.NewClient(ctx, cfg.APIKey)
	cancel()
	if err != nil {
		logging.Error("Failed to initialize completion client", "error", err)
		os.Exit(1)
	}
	container.SetModelName(client.ModelName())
	logging.Info("Completion model resolved", "model", client.ModelName())

	extractor := docextract.New(cfg.MaxExtractChars, cfg.PreviewWidth, cfg.PreviewJPEGQuality)
	healthChecker := health.NewHealthChecker(container)
	handler := handlers.NewHTTPHandler(container, client, extractor, validator, healthChecker, cfg)

	srv := server.NewServer(cfg, handler)

	var logCleaner scheduler.LogCleaner
	if w := logWriter(); w != nil {
		logCleaner = w
	}
	maintenance := scheduler.NewMaintenanceScheduler(container, server.LimiterCleanup, logCleaner)
	if err := maintenance.Start(); err != nil {
		logging.Error("Failed to start maintenance scheduler", "error", err)
		os.Exit(1)
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	maintenance.Stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}

	if err := client.Close(); err != nil {
		logging.Error("Completion client close error", "error", err)
	}

	if w := logWriter(); w != nil {
		if err := w.Close(); err != nil {
			logging.Error("Log writer close error", "error", err)
		}
	}
}

// logWriter returns the rotating log writer when file logging is active.
func logWriter() *logging.RotatingWriter {
	if logging.DefaultLoggingService == nil {
		return nil
	}
	return logging.DefaultLoggingService.Writer
}
