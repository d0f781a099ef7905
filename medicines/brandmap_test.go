package medicines

import (
	"reflect"
	"testing"

	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

func TestMapRegionsBasicScenario(t *testing.T) {
	records := []entities.MedicineRecord{
		{
			ID:      "p1",
			Name:    "Paracetamol",
			Generic: "Acetaminophen",
			Brands: []entities.BrandEntry{
				{Brand: "Calpol", Region: "IN"},
				{Brand: "Tylenol", Region: "US"},
			},
		},
	}

	rows := MapRegions(records, "IN", "US")
	if len(rows) != 1 {
		t.Fatalf("Expected 1 mapping row, got %d", len(rows))
	}

	if !reflect.DeepEqual(rows[0].From, []string{"Calpol"}) {
		t.Errorf("Expected from=[Calpol], got %v", rows[0].From)
	}
	if !reflect.DeepEqual(rows[0].To, []string{"Tylenol"}) {
		t.Errorf("Expected to=[Tylenol], got %v", rows[0].To)
	}
	if rows[0].ID != "p1" || rows[0].Name != "Paracetamol" || rows[0].Generic != "Acetaminophen" {
		t.Errorf("Mapping row lost record fields: %+v", rows[0])
	}
}

func TestMapRegionsGlobalAppearsOnBothSides(t *testing.T) {
	records := testRecords() // p1 carries Panadol with region GLOBAL

	rows := MapRegions(records, "IN", "US")
	row := rows[0]

	if !containsString(row.From, "Panadol") || !containsString(row.To, "Panadol") {
		t.Errorf("GLOBAL brand must be in both lists, got from=%v to=%v", row.From, row.To)
	}

	// GLOBAL survives arbitrary region codes too
	rows = MapRegions(records, "FR", "JP")
	row = rows[0]
	if !containsString(row.From, "Panadol") || !containsString(row.To, "Panadol") {
		t.Errorf("GLOBAL brand must survive unknown regions, got from=%v to=%v", row.From, row.To)
	}
}

func TestMapRegionsCaseInsensitive(t *testing.T) {
	records := testRecords() // p3 uses lowercase region codes in the dataset

	rows := MapRegions(records, "in", "us")
	row := rows[2]

	if !reflect.DeepEqual(row.From, []string{"Omez"}) {
		t.Errorf("Expected lowercase dataset region to match, got from=%v", row.From)
	}
	if !reflect.DeepEqual(row.To, []string{"Prilosec"}) {
		t.Errorf("Expected lowercase dataset region to match, got to=%v", row.To)
	}
}

func TestMapRegionsDefaults(t *testing.T) {
	records := testRecords()

	explicit := MapRegions(records, "IN", "US")
	defaulted := MapRegions(records, "", "")
	if !reflect.DeepEqual(explicit, defaulted) {
		t.Error("Empty region codes must fall back to IN -> US")
	}
}

func TestMapRegionsPreservesOrder(t *testing.T) {
	records := testRecords()

	rows := MapRegions(records, "IN", "US")
	if len(rows) != len(records) {
		t.Fatalf("Expected %d rows, got %d", len(records), len(rows))
	}
	for i := range records {
		if rows[i].ID != records[i].ID {
			t.Errorf("Row %d: expected id %s, got %s", i, records[i].ID, rows[i].ID)
		}
	}
}

func TestMapRegionsExcludesForeignBrands(t *testing.T) {
	rows := MapRegions(testRecords(), "IN", "US")
	for _, row := range rows {
		if containsString(row.From, "Tylenol") || containsString(row.From, "Advil") || containsString(row.From, "Prilosec") {
			t.Errorf("US brand leaked into from list: %v", row.From)
		}
		if containsString(row.To, "Calpol") || containsString(row.To, "Brufen") || containsString(row.To, "Omez") {
			t.Errorf("IN brand leaked into to list: %v", row.To)
		}
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
