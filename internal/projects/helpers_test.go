package projects

import (
	"strings"
	"testing"
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func validInput() models.ProjectInput {
	return models.ProjectInput{
		Title:    "Team feed",
		Category: enums.ProjectCategoryFeed,
		Status:   enums.ProjectStatusInProgress,
	}
}

func TestValidateProjectInputTitleBoundary(t *testing.T) {
	input := validInput()
	input.Title = strings.Repeat("a", 255)
	if result := ValidateProjectInput(input); !result.IsValid {
		t.Fatalf("255-character title must pass, got %v", result.Errors)
	}

	input.Title = strings.Repeat("a", 256)
	result := ValidateProjectInput(input)
	if result.IsValid {
		t.Fatalf("256-character title must fail")
	}
	if result.Errors[0] != "project title must be at most 255 characters" {
		t.Fatalf("unexpected message %q", result.Errors[0])
	}
}

func TestValidateProjectInputTitleRequired(t *testing.T) {
	input := validInput()
	input.Title = "   "
	result := ValidateProjectInput(input)
	if result.IsValid {
		t.Fatalf("whitespace title must fail")
	}
	if result.Errors[0] != "project title is required" {
		t.Fatalf("unexpected message %q", result.Errors[0])
	}
}

func TestValidateProjectInputCategory(t *testing.T) {
	input := validInput()
	input.Category = ""
	if result := ValidateProjectInput(input); result.IsValid {
		t.Fatalf("missing category must fail")
	}

	input.Category = "mystery"
	if result := ValidateProjectInput(input); result.IsValid {
		t.Fatalf("unknown category must fail")
	}
}

func TestValidateProjectInputStatusOptional(t *testing.T) {
	input := validInput()
	input.Status = ""
	if result := ValidateProjectInput(input); !result.IsValid {
		t.Fatalf("empty status is allowed, got %v", result.Errors)
	}

	input.Status = "paused"
	if result := ValidateProjectInput(input); result.IsValid {
		t.Fatalf("unknown status must fail")
	}
}

func TestValidateProjectInputDescriptionBoundary(t *testing.T) {
	input := validInput()
	input.Description = strings.Repeat("d", 1000)
	if result := ValidateProjectInput(input); !result.IsValid {
		t.Fatalf("1000-character description must pass, got %v", result.Errors)
	}

	input.Description = strings.Repeat("d", 1001)
	if result := ValidateProjectInput(input); result.IsValid {
		t.Fatalf("1001-character description must fail")
	}
}

func TestValidateProjectInputCollectsAllErrors(t *testing.T) {
	result := ValidateProjectInput(models.ProjectInput{})
	if result.IsValid {
		t.Fatalf("empty input must fail")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected title and category errors, got %v", result.Errors)
	}
}

func TestDefaultProjectInput(t *testing.T) {
	input := DefaultProjectInput()
	if input.Category != enums.ProjectCategoryFeed {
		t.Fatalf("default category should be feed, got %s", input.Category)
	}
	if input.Status != enums.ProjectStatusInProgress {
		t.Fatalf("default status should be in_progress, got %s", input.Status)
	}
	if !input.IsPublic || !input.HasAdminAccess {
		t.Fatalf("defaults should be public with admin access")
	}
}

func TestFilterAndSort(t *testing.T) {
	now := time.Now()
	list := []models.Project{
		{Title: "Beta board", Category: enums.ProjectCategoryFeed, Status: enums.ProjectStatusInProgress, IsPublic: true, CreatedAt: now.Add(-time.Hour)},
		{Title: "Alpha tasks", Category: enums.ProjectCategoryTask, Status: enums.ProjectStatusCompleted, IsPublic: false, CreatedAt: now},
	}

	feedOnly := Filter(list, Filters{Category: enums.ProjectCategoryFeed})
	if len(feedOnly) != 1 || feedOnly[0].Title != "Beta board" {
		t.Fatalf("unexpected category filter result: %v", feedOnly)
	}

	searched := Filter(list, Filters{Search: "alpha"})
	if len(searched) != 1 || searched[0].Title != "Alpha tasks" {
		t.Fatalf("unexpected search filter result: %v", searched)
	}

	sorted := Sort(list, "title", true)
	if sorted[0].Title != "Alpha tasks" {
		t.Fatalf("unexpected sort order: %v", sorted)
	}
	if list[0].Title != "Beta board" {
		t.Fatalf("input slice should not be mutated")
	}
}
