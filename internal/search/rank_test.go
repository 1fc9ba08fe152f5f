package search

import (
	"testing"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func TestGroupResultsFixedOrder(t *testing.T) {
	hits := []models.SearchResult{
		{Type: enums.ResultTypeBlog, Title: "post"},
		{Type: enums.ResultTypeUser, Title: "mina"},
		{Type: enums.ResultTypeProject, Title: "feed"},
		{Type: enums.ResultTypeProject, Title: "roadmap"},
		{Type: enums.ResultTypeMyProject, Title: "checklist"},
	}

	groups := GroupResults(hits)
	want := []enums.ResultType{
		enums.ResultTypeProject,
		enums.ResultTypeMyProject,
		enums.ResultTypeUser,
		enums.ResultTypeBlog,
	}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups but got %d", len(want), len(groups))
	}
	for i, g := range groups {
		if g.Type != want[i] {
			t.Fatalf("group %d: expected %s but got %s", i, want[i], g.Type)
		}
	}
	if len(groups[0].Results) != 2 || groups[0].Results[0].Title != "feed" {
		t.Fatalf("within-group order not preserved: %v", groups[0].Results)
	}
}

func TestGroupResultsUnknownTypesLast(t *testing.T) {
	hits := []models.SearchResult{
		{Type: "widget", Title: "a"},
		{Type: enums.ResultTypeProject, Title: "feed"},
		{Type: "gadget", Title: "b"},
		{Type: "widget", Title: "c"},
	}

	groups := GroupResults(hits)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups but got %d", len(groups))
	}
	if groups[0].Type != enums.ResultTypeProject {
		t.Fatalf("known group should come first, got %s", groups[0].Type)
	}
	if groups[1].Type != "widget" || groups[2].Type != "gadget" {
		t.Fatalf("unknown groups should keep first-encountered order, got %s then %s",
			groups[1].Type, groups[2].Type)
	}
	if len(groups[1].Results) != 2 {
		t.Fatalf("expected both widget hits in one group")
	}
}

func TestArrangeFlattensGroupOrder(t *testing.T) {
	hits := []models.SearchResult{
		{Type: enums.ResultTypeBlog, Title: "post"},
		{Type: enums.ResultTypeProject, Title: "feed"},
		{Type: enums.ResultTypeUser, Title: "mina"},
		{Type: enums.ResultTypeProject, Title: "roadmap"},
	}

	arranged := Arrange(hits)
	wantTitles := []string{"feed", "roadmap", "mina", "post"}
	for i, title := range wantTitles {
		if arranged[i].Title != title {
			t.Fatalf("position %d: expected %q but got %q", i, title, arranged[i].Title)
		}
	}
}

func TestSortResultsAlphabetical(t *testing.T) {
	hits := []models.SearchResult{
		{Type: enums.ResultTypeProject, Title: "beta"},
		{Type: enums.ResultTypeProject, Title: "Alpha"},
		{Type: enums.ResultTypeUser, Title: "charlie"},
	}

	sorted := SortResults(hits, enums.SortModeAlphabetical)
	if sorted[0].Title != "Alpha" || sorted[1].Title != "beta" || sorted[2].Title != "charlie" {
		t.Fatalf("unexpected alphabetical order: %v", sorted)
	}
	if hits[0].Title != "beta" {
		t.Fatalf("input slice should not be mutated")
	}
}

func TestSortResultsRelevanceIsStable(t *testing.T) {
	hits := []models.SearchResult{
		{Type: enums.ResultTypeStatus, Title: "away"},
		{Type: enums.ResultTypeUser, Title: "mina"},
		{Type: enums.ResultTypeMyProject, Title: "mine"},
		{Type: enums.ResultTypeProject, Title: "feed"},
		{Type: "mystery", Title: "???"},
	}

	sorted := SortResults(hits, enums.SortModeRelevance)
	wantTitles := []string{"mine", "feed", "mina", "away", "???"}
	for i, title := range wantTitles {
		if sorted[i].Title != title {
			t.Fatalf("position %d: expected %q but got %q", i, title, sorted[i].Title)
		}
	}
}

func TestFilterResults(t *testing.T) {
	hits := []models.SearchResult{
		{Type: enums.ResultTypeProject, Title: "feed", Category: "feed"},
		{Type: enums.ResultTypeProject, Title: "tasks", Category: "task"},
		{Type: enums.ResultTypeUser, Title: "mina"},
	}

	onlyProjects := FilterResults(hits, enums.ResultTypeProject, "")
	if len(onlyProjects) != 2 {
		t.Fatalf("expected 2 project hits but got %d", len(onlyProjects))
	}
	feedOnly := FilterResults(hits, enums.ResultTypeProject, "feed")
	if len(feedOnly) != 1 || feedOnly[0].Title != "feed" {
		t.Fatalf("unexpected category filter result: %v", feedOnly)
	}
}
