package search

import (
	"sort"
	"strings"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

// ResultGroup is one display section of grouped search hits.
type ResultGroup struct {
	Type    enums.ResultType
	Results []models.SearchResult
}

// GroupResults buckets hits by type in the fixed display order. Unknown
// types are listed after the known groups in the order first encountered.
// Within a group the backend's relative order is preserved.
func GroupResults(results []models.SearchResult) []ResultGroup {
	buckets := make(map[enums.ResultType][]models.SearchResult)
	var unknownOrder []enums.ResultType
	for _, r := range results {
		if _, seen := buckets[r.Type]; !seen && !r.Type.IsValid() {
			unknownOrder = append(unknownOrder, r.Type)
		}
		buckets[r.Type] = append(buckets[r.Type], r)
	}

	var groups []ResultGroup
	for _, t := range enums.ResultTypeDisplayOrder() {
		if hits, ok := buckets[t]; ok {
			groups = append(groups, ResultGroup{Type: t, Results: hits})
		}
	}
	for _, t := range unknownOrder {
		groups = append(groups, ResultGroup{Type: t, Results: buckets[t]})
	}
	return groups
}

// Arrange flattens the grouped ordering back into a single list.
func Arrange(results []models.SearchResult) []models.SearchResult {
	out := make([]models.SearchResult, 0, len(results))
	for _, group := range GroupResults(results) {
		out = append(out, group.Results...)
	}
	return out
}

// SortResults orders a copy of the hits by the requested mode. Ties keep
// the incoming order.
func SortResults(results []models.SearchResult, mode enums.SortMode) []models.SearchResult {
	out := make([]models.SearchResult, len(results))
	copy(out, results)

	switch mode {
	case enums.SortModeAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case enums.SortModeRelevance:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Type.RelevancePriority() < out[j].Type.RelevancePriority()
		})
	}
	return out
}

// FilterResults narrows hits by type and/or category.
func FilterResults(results []models.SearchResult, resultType enums.ResultType, category string) []models.SearchResult {
	out := make([]models.SearchResult, 0, len(results))
	for _, r := range results {
		if resultType != "" && r.Type != resultType {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, r)
	}
	return out
}
