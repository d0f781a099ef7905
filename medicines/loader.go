// Package medicines provides the in-memory medicine reference store:
// dataset loading, exact and fuzzy name lookup, brand region mapping
// and heuristic medicine-mention detection.
package medicines

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

// Load reads the static medicine dataset from a JSON file.
//
// The caller decides how to degrade on failure: the service treats a
// missing or malformed dataset as startup-degraded and continues with
// an empty store, so Load only reports the error instead of exiting.
func Load(path string) ([]entities.MedicineRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read medicine dataset: %w", err)
	}

	var records []entities.MedicineRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse medicine dataset: %w", err)
	}

	return records, nil
}
