package data

import (
	"testing"
	"time"

	"github.com/NITHIN-BHAT/MedGPT/medicines"
	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

func TestNewDataContainerIsSafeBeforeInit(t *testing.T) {
	dc := NewDataContainer()

	if store := dc.GetStore(); store == nil || store.Len() != 0 {
		t.Errorf("Expected empty store before init, got %v", store)
	}
	if model := dc.GetModelName(); model != "" {
		t.Errorf("Expected empty model name before init, got %q", model)
	}
	if !dc.GetLastLoaded().IsZero() {
		t.Error("Expected zero last-loaded time before init")
	}
}

func TestSetStore(t *testing.T) {
	dc := NewDataContainer()

	records := []entities.MedicineRecord{
		{ID: "p1", Name: "Paracetamol", Generic: "Acetaminophen"},
	}
	dc.SetStore(medicines.NewStore(records))

	if dc.GetStore().Len() != 1 {
		t.Errorf("Expected 1 record after SetStore, got %d", dc.GetStore().Len())
	}
	if dc.GetLastLoaded().IsZero() {
		t.Error("Expected last-loaded timestamp to be set")
	}
}

func TestSetStoreNilFallsBackToEmpty(t *testing.T) {
	dc := NewDataContainer()
	dc.SetStore(nil)

	if store := dc.GetStore(); store == nil || store.Len() != 0 {
		t.Error("Expected nil store to be replaced with an empty one")
	}
}

func TestModelNameRoundTrip(t *testing.T) {
	dc := NewDataContainer()
	dc.SetModelName("models/gemini-2.0-flash")

	if got := dc.GetModelName(); got != "models/gemini-2.0-flash" {
		t.Errorf("Expected model name round trip, got %q", got)
	}
}

func TestServerStartTime(t *testing.T) {
	dc := NewDataContainer()

	now := time.Now()
	dc.SetServerStartTime(now)
	if !dc.GetServerStartTime().Equal(now) {
		t.Error("Expected server start time round trip")
	}
}
