package medicines

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/NITHIN-BHAT/MedGPT/medicines/entities"
)

// Fuzzy matching defaults. These mirror the values the service has
// always shipped with; config can override them per deployment.
const (
	DefaultFuzzyLimit    = 5
	DefaultFuzzyMinScore = 60
)

// Match ranks every searchable name against the query using the
// weighted-ratio scorer and returns the candidates scoring at least
// minScore, best first, truncated to limit.
//
// An empty or whitespace-only query returns nil without invoking the
// scorer at all. Ordering is deterministic: equal scores keep the
// first-seen order of the name index.
func (s *Store) Match(query string, limit, minScore int) []entities.MatchCandidate {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultFuzzyLimit
	}
	// Zero is a valid threshold (accept everything); only a negative
	// value means "use the default".
	if minScore < 0 {
		minScore = DefaultFuzzyMinScore
	}

	var out []entities.MatchCandidate
	for _, name := range s.names {
		score := fuzzy.WRatio(query, name)
		if score >= minScore {
			out = append(out, entities.MatchCandidate{Name: name, Score: score})
		}
	}

	// Stable sort keeps corpus order for ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
