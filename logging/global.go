package logging

import (
	"log/slog"
	"os"
)

// LoggingService holds the process-wide logger and its file writer.
type LoggingService struct {
	Logger *slog.Logger
	Writer *RotatingWriter
}

var DefaultLoggingService *LoggingService

// InitLogger initializes the global logger instance and installs it as
// the slog default.
func InitLogger(logDir, level string, retentionWeeks int, maxFileSize int64) {
	logger, writer := SetupLogger(logDir, level, retentionWeeks, maxFileSize)
	DefaultLoggingService = &LoggingService{Logger: logger, Writer: writer}
	slog.SetDefault(logger)
}

// logger returns the configured logger, or a console fallback when
// logging has not been initialized yet (early startup, tests).
func logger() *slog.Logger {
	if DefaultLoggingService != nil && DefaultLoggingService.Logger != nil {
		return DefaultLoggingService.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}

func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}
