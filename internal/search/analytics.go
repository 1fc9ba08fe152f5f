package search

import (
	"context"
	"sort"
	"time"

	"github.com/flowpms/flowpms-go/pkg/models"
)

const (
	topQueryLimit    = 10
	recentWindowDays = 7
)

// Analytics derives usage figures from the stored history alone. Counts are
// cumulative across re-searches; the recent window covers the last 7 days.
func (h *History) Analytics(ctx context.Context) models.SearchAnalytics {
	entries := h.List(ctx)
	analytics := models.SearchAnalytics{}
	if len(entries) == 0 {
		return analytics
	}

	cutoff := h.now().AddDate(0, 0, -recentWindowDays)
	counts := make([]models.QueryCount, 0, len(entries))
	for _, entry := range entries {
		analytics.TotalSearches += entry.Count
		if entry.Timestamp.After(cutoff) {
			analytics.RecentSearches++
		}
		counts = append(counts, models.QueryCount{Query: entry.Query, Count: entry.Count})
	}

	// Ties keep the stored most-recent-first order.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > topQueryLimit {
		counts = counts[:topQueryLimit]
	}
	analytics.TopQueries = counts

	last := lastSearched(entries)
	analytics.LastSearched = &last
	return analytics
}

func lastSearched(entries []models.HistoryEntry) time.Time {
	last := entries[0].Timestamp
	for _, entry := range entries[1:] {
		if entry.Timestamp.After(last) {
			last = entry.Timestamp
		}
	}
	return last
}
