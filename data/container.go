// Package data provides the process-wide state container for the
// MedGPT backend: the medicine reference store and the resolved
// completion model. Values are stored behind atomic pointers in the
// same style as a hot-swappable container, but here they are written
// exactly once at startup and read-only afterwards.
package data

import (
	"sync/atomic"
	"time"

	"github.com/NITHIN-BHAT/MedGPT/interfaces"
	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/medicines"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer holds the startup-resolved state.
type DataContainer struct {
	store           atomic.Value // *medicines.Store
	modelName       atomic.Value // string
	lastLoaded      atomic.Value // time.Time
	serverStartTime atomic.Value // time.Time
}

// NewDataContainer creates a container with an empty store so every
// getter is safe before initialization completes.
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.store.Store(medicines.NewStore(nil))
	dc.modelName.Store("")
	dc.lastLoaded.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// SetStore installs the loaded medicine store. Called once at startup.
func (dc *DataContainer) SetStore(store *medicines.Store) {
	if store == nil {
		store = medicines.NewStore(nil)
	}
	dc.store.Store(store)
	dc.lastLoaded.Store(time.Now())
}

// GetStore returns the medicine reference store.
func (dc *DataContainer) GetStore() *medicines.Store {
	if v := dc.store.Load(); v != nil {
		if store, ok := v.(*medicines.Store); ok {
			return store
		}
	}

	logging.Warn("Medicine store is empty or invalid")
	return medicines.NewStore(nil)
}

// SetModelName records the completion model resolved at startup.
func (dc *DataContainer) SetModelName(model string) {
	dc.modelName.Store(model)
}

// GetModelName returns the resolved completion model identifier.
func (dc *DataContainer) GetModelName() string {
	if v := dc.modelName.Load(); v != nil {
		if model, ok := v.(string); ok {
			return model
		}
	}

	logging.Warn("Could not get the model name value")
	return ""
}

// GetLastLoaded returns when the dataset was loaded.
func (dc *DataContainer) GetLastLoaded() time.Time {
	if v := dc.lastLoaded.Load(); v != nil {
		if lastLoaded, ok := v.(time.Time); ok {
			return lastLoaded
		}
	}

	logging.Warn("Could not get the last loaded value")
	return time.Time{}
}

// SetServerStartTime sets the server start time.
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time.
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}
