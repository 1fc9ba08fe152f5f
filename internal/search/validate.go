package search

import (
	"strings"
	"unicode"

	"github.com/flowpms/flowpms-go/pkg/types"
)

const maxQueryLen = 100

// ValidateQuery applies the search query contract: non-empty after trimming,
// at most 100 characters, and containing at least one letter or digit.
// Returned as a structured result, never thrown.
func ValidateQuery(query string) types.ValidationResult {
	var errs []string

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		errs = append(errs, "search query is required")
	}
	if len([]rune(query)) > maxQueryLen {
		errs = append(errs, "search query must be at most 100 characters")
	}
	if trimmed != "" && !containsAlphanumeric(trimmed) {
		errs = append(errs, "search query must contain letters or digits")
	}

	if len(errs) > 0 {
		return types.Invalid(errs)
	}
	return types.Valid()
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
