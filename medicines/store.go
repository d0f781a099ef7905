package medicines

import (
	"github.com/NITHIN-BHAT/MedGPT/logging"
	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

// indexEntry maps one searchable string back to its owning record.
// The same name may legitimately appear for several records.
type indexEntry struct {
	name string // as loaded, used for display and scoring
	norm string // folded form used for exact lookup
	id   string
}

// Store holds the medicine reference table and its name index.
// It is built once and read-only afterwards, so it is safe to share
// across concurrent requests without locking.
type Store struct {
	records []entities.MedicineRecord
	byID    map[string]entities.MedicineRecord
	index   []indexEntry
	names   []string // index order, duplicates allowed
}

// NewStore builds a store from loaded records. Records with a
// duplicate identifier are dropped (first occurrence wins) so the
// unique-ID invariant always holds regardless of dataset quality.
func NewStore(records []entities.MedicineRecord) *Store {
	s := &Store{
		byID: make(map[string]entities.MedicineRecord, len(records)),
	}

	for _, r := range records {
		if _, exists := s.byID[r.ID]; exists {
			logging.Warn("Duplicate medicine id in dataset, keeping first", "id", r.ID, "name", r.Name)
			continue
		}
		s.byID[r.ID] = r
		s.records = append(s.records, r)

		s.addName(r.Name, r.ID)
		s.addName(r.Generic, r.ID)
		for _, b := range r.Brands {
			s.addName(b.Brand, r.ID)
		}
	}

	return s
}

func (s *Store) addName(name, id string) {
	if name == "" {
		return
	}
	s.index = append(s.index, indexEntry{name: name, norm: normalizeName(name), id: id})
	s.names = append(s.names, name)
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns all records in load order.
func (s *Store) Records() []entities.MedicineRecord {
	return s.records
}

// ByID returns the record with the given identifier.
func (s *Store) ByID(id string) (entities.MedicineRecord, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// FindExact returns every record whose canonical name, generic name
// or any brand name equals the query, case and accent insensitively.
// Results are deduplicated by identifier and preserve load order.
func (s *Store) FindExact(name string) []entities.MedicineRecord {
	q := normalizeName(name)
	if q == "" {
		return nil
	}

	var out []entities.MedicineRecord
	for _, r := range s.records {
		if s.recordMatches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) recordMatches(r entities.MedicineRecord, q string) bool {
	if normalizeName(r.Name) == q || normalizeName(r.Generic) == q {
		return true
	}
	for _, b := range r.Brands {
		if normalizeName(b.Brand) == q {
			return true
		}
	}
	return false
}

// AllSearchableNames returns every searchable string (canonical name,
// generic name, every brand name) in load order. Duplicates across
// records are permitted.
func (s *Store) AllSearchableNames() []string {
	return s.names
}
