package medicines

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeName folds a searchable name for lookup: lowercase, trimmed
// and with diacritics stripped, so "Páracetamol" and "paracetamol"
// compare equal. A fresh transformer chain is built per call because
// chained transformers carry internal state and are not safe to share
// across requests.
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
