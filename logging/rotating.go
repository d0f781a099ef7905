// Package logging configures slog for the MedGPT backend: console
// output plus a weekly rotating JSON log file, with global helper
// functions and an HTTP request middleware.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RotatingWriter is an io.Writer that appends to a per-ISO-week log
// file, starting a numbered sibling when the size cap is hit. Old
// files are removed by CleanupOldLogs, which the scheduler invokes
// daily.
type RotatingWriter struct {
	logDir      string
	retention   time.Duration
	maxFileSize int64

	mu   sync.Mutex
	file *os.File
	week string
	seq  int
	size int64
}

// NewRotatingWriter creates a writer rotating under logDir. A
// non-positive maxFileSize disables size-based rotation.
func NewRotatingWriter(logDir string, retentionWeeks int, maxFileSize int64) *RotatingWriter {
	if retentionWeeks <= 0 {
		retentionWeeks = 4
	}
	return &RotatingWriter{
		logDir:      logDir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxFileSize: maxFileSize,
	}
}

// weekKey returns the ISO week key, e.g. "2026-W34".
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func (w *RotatingWriter) fileName() string {
	if w.seq == 0 {
		return fmt.Sprintf("app-%s.log", w.week)
	}
	return fmt.Sprintf("app-%s_%02d.log", w.week, w.seq)
}

// Write implements io.Writer, rotating first when the week changed or
// the current file would exceed the size cap.
func (w *RotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	week := weekKey(time.Now())
	switch {
	case w.file == nil || w.week != week:
		if err := w.open(week, 0); err != nil {
			return 0, err
		}
	case w.maxFileSize > 0 && w.size+int64(len(p)) > w.maxFileSize:
		if err := w.open(week, w.seq+1); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// open switches to the file for the given week and sequence number
// (caller must hold the lock).
func (w *RotatingWriter) open(week string, seq int) error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		w.file = nil
	}

	w.week = week
	w.seq = seq

	path := filepath.Join(w.logDir, w.fileName())
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	w.file = file
	w.size = 0
	if info, err := file.Stat(); err == nil {
		w.size = info.Size()
	}
	return nil
}

// CleanupOldLogs removes app-*.log files older than the retention
// period and returns how many were deleted.
func (w *RotatingWriter) CleanupOldLogs() (int, error) {
	entries, err := os.ReadDir(w.logDir)
	if err != nil {
		return 0, fmt.Errorf("read log directory: %w", err)
	}

	cutoff := time.Now().Add(-w.retention)
	deleted := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(w.logDir, name)); err == nil {
				deleted++
			}
		}
	}
	return deleted, nil
}

// Close closes the current log file.
func (w *RotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
