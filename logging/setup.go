package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// parseLevel maps a config string onto a slog level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures slog to write text to the console and JSON to
// a weekly rotating file under logDir. If the log directory cannot be
// created it degrades to console-only logging. The returned writer is
// nil in the console-only case.
func SetupLogger(logDir, level string, retentionWeeks int, maxFileSize int64) (*slog.Logger, *RotatingWriter) {
	slogLevel := parseLevel(level)

	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel,
	})

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := slog.New(consoleHandler)
		logger.Error("Failed to create logs directory, console logging only", "error", err)
		return logger, nil
	}

	writer := NewRotatingWriter(logDir, retentionWeeks, maxFileSize)
	fileHandler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slogLevel,
	})

	return slog.New(&multiHandler{handlers: []slog.Handler{consoleHandler, fileHandler}}), writer
}

// multiHandler fans a record out to every underlying handler.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
