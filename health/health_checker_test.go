package health

import (
	"testing"
	"time"

	"github.com/NITHIN-BHAT/MedGPT/data"
	"github.com/NITHIN-BHAT/MedGPT/medicines"
	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

func TestHealthCheckDegradedWithEmptyStore(t *testing.T) {
	dc := data.NewDataContainer()
	checker := NewHealthChecker(dc)

	status, details, err := checker.HealthCheck()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != "degraded" {
		t.Errorf("Expected degraded status with empty store, got %s", status)
	}
	if details["medicines"] != 0 {
		t.Errorf("Expected 0 medicines, got %v", details["medicines"])
	}
}

func TestHealthCheckHealthyWithData(t *testing.T) {
	dc := data.NewDataContainer()
	dc.SetStore(medicines.NewStore([]entities.MedicineRecord{
		{ID: "p1", Name: "Paracetamol", Generic: "Acetaminophen"},
	}))
	dc.SetModelName("models/gemini-2.0-flash")
	dc.SetServerStartTime(time.Now().Add(-time.Minute))

	checker := NewHealthChecker(dc)

	status, details, err := checker.HealthCheck()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if status != "healthy" {
		t.Errorf("Expected healthy status, got %s", status)
	}
	if details["medicines"] != 1 {
		t.Errorf("Expected 1 medicine, got %v", details["medicines"])
	}
	if details["model"] != "models/gemini-2.0-flash" {
		t.Errorf("Expected model in details, got %v", details["model"])
	}

	uptime, ok := details["uptime_seconds"].(float64)
	if !ok || uptime <= 0 {
		t.Errorf("Expected positive uptime, got %v", details["uptime_seconds"])
	}
}
