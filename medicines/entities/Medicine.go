package entities

// MedicineRecord is one row of the static medicine reference table.
// Records are loaded once at startup and never mutated afterwards.
type MedicineRecord struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Generic string       `json:"generic"`
	Class   string       `json:"class,omitempty"`
	Brands  []BrandEntry `json:"brands"`
}

// BrandEntry is a brand name together with its availability region.
// Region is a short code such as "IN" or "US", or "GLOBAL" when the
// brand is available everywhere.
type BrandEntry struct {
	Brand  string `json:"brand"`
	Region string `json:"region"`
}
