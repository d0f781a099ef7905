package medicines

import (
	"strings"

	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

// Region constants used by the brand mapper.
const (
	RegionGlobal      = "GLOBAL"
	DefaultRegionFrom = "IN"
	DefaultRegionTo   = "US"
)

// MapRegions partitions each record's brand list into the brands
// available in regionFrom and in regionTo. Brands with region GLOBAL
// appear on both sides. Region comparison is case-insensitive and
// empty region codes fall back to the IN -> US defaults. Output
// preserves the input record order.
func MapRegions(records []entities.MedicineRecord, regionFrom, regionTo string) []entities.MappingRow {
	from := canonicalRegion(regionFrom, DefaultRegionFrom)
	to := canonicalRegion(regionTo, DefaultRegionTo)

	rows := make([]entities.MappingRow, 0, len(records))
	for _, r := range records {
		row := entities.MappingRow{
			ID:      r.ID,
			Name:    r.Name,
			Generic: r.Generic,
			Class:   r.Class,
			From:    []string{},
			To:      []string{},
		}
		for _, b := range r.Brands {
			region := strings.ToUpper(strings.TrimSpace(b.Region))
			if region == from || region == RegionGlobal {
				row.From = append(row.From, b.Brand)
			}
			if region == to || region == RegionGlobal {
				row.To = append(row.To, b.Brand)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func canonicalRegion(region, fallback string) string {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return fallback
	}
	return region
}
