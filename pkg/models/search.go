package models

import (
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
)

// SearchResult is one hit returned by the unified search endpoint. Results
// are transient display data and are never persisted.
type SearchResult struct {
	Type        enums.ResultType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	URL         string           `json:"url,omitempty"`
	Icon        string           `json:"icon,omitempty"`
}

// HistoryEntry is one locally persisted search, most-recent-first in the
// stored sequence. Entries are keyed by exact trimmed query text.
type HistoryEntry struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}

// QueryCount pairs a query with its cumulative search count.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// SearchAnalytics is derived locally from stored history, no network call.
type SearchAnalytics struct {
	TotalSearches  int          `json:"totalSearches"`
	RecentSearches int          `json:"recentSearches"`
	TopQueries     []QueryCount `json:"topQueries"`
	LastSearched   *time.Time   `json:"lastSearched,omitempty"`
}
