package search

import (
	"testing"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func TestHighlightCaseInsensitive(t *testing.T) {
	got := Highlight("Project Alpha is my project", "project")
	want := "<mark>Project</mark> Alpha is my <mark>project</mark>"
	if got != want {
		t.Fatalf("expected %q but got %q", want, got)
	}
}

func TestHighlightNonOverlapping(t *testing.T) {
	got := Highlight("aaaa", "aa")
	want := "<mark>aa</mark><mark>aa</mark>"
	if got != want {
		t.Fatalf("expected %q but got %q", want, got)
	}
}

func TestHighlightNoMatchUnchanged(t *testing.T) {
	if got := Highlight("hello world", "xyz"); got != "hello world" {
		t.Fatalf("text without matches should be unchanged, got %q", got)
	}
}

func TestHighlightEmptyInputs(t *testing.T) {
	if got := Highlight("", "query"); got != "" {
		t.Fatalf("empty text should stay empty, got %q", got)
	}
	if got := Highlight("hello", ""); got != "hello" {
		t.Fatalf("empty query should leave text unchanged, got %q", got)
	}
	if got := Highlight("hello", "   "); got != "hello" {
		t.Fatalf("whitespace query should leave text unchanged, got %q", got)
	}
}

func TestHighlightQueryLongerThanText(t *testing.T) {
	if got := Highlight("ab", "abc"); got != "ab" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestHighlightResultMarksTitleAndDescription(t *testing.T) {
	hit := models.SearchResult{
		Type:        enums.ResultTypeProject,
		Title:       "Team feed",
		Description: "The feed board",
	}
	marked := HighlightResult(hit, "feed")
	if marked.Title != "Team <mark>feed</mark>" {
		t.Fatalf("unexpected title: %q", marked.Title)
	}
	if marked.Description != "The <mark>feed</mark> board" {
		t.Fatalf("unexpected description: %q", marked.Description)
	}
	if hit.Title != "Team feed" {
		t.Fatalf("input result should not be mutated")
	}
}
