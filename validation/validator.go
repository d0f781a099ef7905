// Package validation provides input validation for the MedGPT API.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NITHIN-BHAT/MedGPT/interfaces"
)

// Free-text questions can be long, but anything beyond this is almost
// certainly abuse and would blow up the completion request anyway.
const maxInputLength = 2000

// Pre-compiled patterns, built once at package initialization.
var (
	regionRegex = regexp.MustCompile(`^[A-Za-z]{2,10}$`)

	// Dangerous substrings checked with strings.Contains; much faster
	// than regex for plain patterns.
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "eval(", "expression(", "@import", "behavior(",
		// SQL injection patterns
		"union select", "drop table", "delete from", "insert into", "xp_", "exec(",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
		// NoSQL injection patterns
		"{$ne:", "{$gt:", "{$where:", "{$regex:",
	}
)

// Compile-time check to ensure ValidatorImpl implements Validator
var _ interfaces.Validator = (*ValidatorImpl)(nil)

// ValidatorImpl implements the interfaces.Validator interface.
type ValidatorImpl struct{}

// NewValidator creates a new validator.
func NewValidator() interfaces.Validator {
	return &ValidatorImpl{}
}

// ValidateInput validates free-text user input.
func (v *ValidatorImpl) ValidateInput(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) > maxInputLength {
		return fmt.Errorf("input too long: %d characters (max %d)", len(input), maxInputLength)
	}

	lowered := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("input contains disallowed pattern")
		}
	}

	return nil
}

// ValidateRegion canonicalizes a region code to upper case. Empty
// input falls back to the supplied default; anything that is not a
// short alphabetic code is rejected.
func (v *ValidatorImpl) ValidateRegion(region, fallback string) (string, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return strings.ToUpper(fallback), nil
	}

	if !regionRegex.MatchString(region) {
		return "", fmt.Errorf("invalid region code: %q", region)
	}

	return strings.ToUpper(region), nil
}

// ValidateRecord checks one dataset record for structural problems.
// Used at load time to report dataset quality; failures degrade to
// warnings, they never abort startup.
func (v *ValidatorImpl) ValidateRecord(id, name, generic string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("record has empty id")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("record %s has empty name", id)
	}
	if strings.TrimSpace(generic) == "" {
		return fmt.Errorf("record %s has empty generic name", id)
	}
	if len(name) > 200 {
		return fmt.Errorf("record %s name too long: %d characters", id, len(name))
	}
	return nil
}
