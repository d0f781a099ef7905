package medicines

import (
	"regexp"
	"strings"
)

// DefaultDetectLimit caps how many mention candidates are returned.
const DefaultDetectLimit = 10

// mentionRegex matches capitalized word runs optionally followed by a
// dosage amount ("Amoxicillin 500 mg", "Co-Amoxiclav"). Pre-compiled
// once, as the validation patterns are.
//
// This is a lexical heuristic, not a validated medicine list: false
// positives and negatives are expected and accepted.
var mentionRegex = regexp.MustCompile(`\b[A-Z][a-zA-Z]{2,}(?:[ -][A-Z][a-zA-Z]+)*(?:\s+\d+(?:\.\d+)?\s?(?:mg|mcg|ml|g|iu|IU))?\b`)

// DetectMentions scans free text for substrings that look like
// medicine names. Results are distinct, keep first-occurrence order
// and never exceed limit. Malformed or empty input yields an empty
// result, never an error.
func DetectMentions(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultDetectLimit
	}

	matches := mentionRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if len(m) <= 2 {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	return out
}
