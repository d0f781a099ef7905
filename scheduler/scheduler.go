// Package scheduler runs background maintenance jobs. The medicine
// dataset is immutable after startup, so there is no data refresh job;
// maintenance is limited to rate limiter cleanup, a periodic health
// heartbeat and log retention.
package scheduler

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/NITHIN-BHAT/MedGPT/interfaces"
	"github.com/NITHIN-BHAT/MedGPT/logging"
)

// Compile-time check to ensure MaintenanceScheduler implements Scheduler
var _ interfaces.Scheduler = (*MaintenanceScheduler)(nil)

// LogCleaner removes log files past the retention window.
type LogCleaner interface {
	CleanupOldLogs() (int, error)
}

// MaintenanceScheduler runs the periodic maintenance jobs.
type MaintenanceScheduler struct {
	dataStore      interfaces.DataStore
	limiterCleanup func() int
	logCleaner     LogCleaner
	scheduler      *gocron.Scheduler
}

// NewMaintenanceScheduler creates a scheduler with injected dependencies.
// limiterCleanup and logCleaner may be nil, the matching jobs are skipped.
func NewMaintenanceScheduler(dataStore interfaces.DataStore, limiterCleanup func() int, logCleaner LogCleaner) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		dataStore:      dataStore,
		limiterCleanup: limiterCleanup,
		logCleaner:     logCleaner,
		scheduler:      gocron.NewScheduler(time.Local),
	}
}

// Start registers the maintenance jobs and starts the scheduler.
func (s *MaintenanceScheduler) Start() error {
	if s.limiterCleanup != nil {
		_, err := s.scheduler.Every(30).Minutes().Do(func() {
			removed := s.limiterCleanup()
			if removed > 0 {
				logging.Info("Rate limiter cleanup completed", "removed", removed)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule limiter cleanup: %w", err)
		}
	}

	_, err := s.scheduler.Every(1).Hours().Do(s.heartbeat)
	if err != nil {
		return fmt.Errorf("failed to schedule heartbeat: %w", err)
	}

	if s.logCleaner != nil {
		_, err := s.scheduler.Every(1).Days().At("03:00").Do(func() {
			removed, err := s.logCleaner.CleanupOldLogs()
			if err != nil {
				logging.Error("Log cleanup failed", "error", err)
				return
			}
			if removed > 0 {
				logging.Info("Log cleanup completed", "removed", removed)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule log cleanup: %w", err)
		}
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler.
func (s *MaintenanceScheduler) Stop() {
	s.scheduler.Stop()
}

// heartbeat logs a periodic snapshot of process health.
func (s *MaintenanceScheduler) heartbeat() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	logging.Info("Health heartbeat",
		"model", s.dataStore.GetModelName(),
		"medicines", s.dataStore.GetStore().Len(),
		"goroutines", runtime.NumGoroutine(),
		"alloc_mb", math.Round(float64(memStats.Alloc)/1024/1024*10)/10)
}
