package entities

// MappingRow is the per-record result of projecting a brand list onto
// two regions. From holds brands available in the source region, To
// the ones available in the target region; GLOBAL brands appear in
// both.
type MappingRow struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Generic string   `json:"generic"`
	Class   string   `json:"class"`
	From    []string `json:"from"`
	To      []string `json:"to"`
}

// MatchCandidate is a searchable name ranked against a free-text
// query. Score is a similarity value in the 0-100 range.
type MatchCandidate struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
