package enums

import "fmt"

// SortMode selects how search results inside a group are ordered.
type SortMode string

const (
	// SortModeDefault preserves the backend's ordering.
	SortModeDefault SortMode = "default"
	// SortModeAlphabetical orders case-insensitively by title.
	SortModeAlphabetical SortMode = "alphabetical"
	// SortModeRelevance orders by the fixed type-priority table.
	SortModeRelevance SortMode = "relevance"
)

var validSortModes = []SortMode{
	SortModeDefault,
	SortModeAlphabetical,
	SortModeRelevance,
}

// String implements fmt.Stringer.
func (m SortMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known SortMode.
func (m SortMode) IsValid() bool {
	for _, candidate := range validSortModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseSortMode converts raw input into a SortMode, defaulting empty input.
func ParseSortMode(value string) (SortMode, error) {
	if value == "" {
		return SortModeDefault, nil
	}
	for _, candidate := range validSortModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort mode %q", value)
}
