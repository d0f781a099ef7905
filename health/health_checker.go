// Package health provides health checking for the MedGPT backend.
package health

import (
	"math"
	"runtime"
	"time"

	"github.com/NITHIN-BHAT/MedGPT/interfaces"
)

// Compile-time check to ensure HealthCheckerImpl implements HealthChecker
var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	dataStore interfaces.DataStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(dataStore interfaces.DataStore) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		dataStore: dataStore,
	}
}

// HealthCheck reports current system health. The dataset is loaded once
// at startup, so an empty store means the process came up without its
// reference data and runs degraded: completions still work, matching
// does not.
func (h *HealthCheckerImpl) HealthCheck() (string, map[string]any, error) {
	store := h.dataStore.GetStore()
	model := h.dataStore.GetModelName()
	startTime := h.dataStore.GetServerStartTime()

	status := "healthy"
	if store.Len() == 0 {
		status = "degraded"
	}

	var uptime float64
	if !startTime.IsZero() {
		uptime = math.Round(time.Since(startTime).Seconds()*10) / 10
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	details := map[string]any{
		"medicines":      store.Len(),
		"model":          model,
		"last_loaded":    h.dataStore.GetLastLoaded().Format(time.RFC3339),
		"uptime_seconds": uptime,
		"goroutines":     runtime.NumGoroutine(),
		"alloc_mb":       math.Round(float64(memStats.Alloc)/1024/1024*10) / 10,
	}

	return status, details, nil
}
