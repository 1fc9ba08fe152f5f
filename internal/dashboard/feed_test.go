package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func seedProjects(now time.Time) []models.Project {
	return []models.Project{
		{ID: uuid.New(), Title: "Team feed", Status: enums.ProjectStatusInProgress, UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Title: "Old archive", Status: enums.ProjectStatusCompleted, UpdatedAt: now.AddDate(0, 0, -10)},
	}
}

func TestNotificationsIncludeProjectsAndSystemItems(t *testing.T) {
	now := time.Now()
	feed := NewFeed()
	user := &models.User{DisplayName: "Jordan Lee"}

	items := feed.Notifications(user, seedProjects(now))
	if len(items) != 4 {
		t.Fatalf("expected 2 project and 2 system notifications, got %d", len(items))
	}
	if items[0].Kind != "project" {
		t.Fatalf("project notifications come first, got %q", items[0].Kind)
	}
	if !items[0].Unread {
		t.Fatalf("a project updated 2 hours ago should be unread")
	}
	if items[1].Unread {
		t.Fatalf("a project updated 10 days ago should be read")
	}
	if items[2].Title != "Welcome back, Jordan Lee" {
		t.Fatalf("greeting should use the display name, got %q", items[2].Title)
	}
}

func TestNotificationsWithoutUser(t *testing.T) {
	feed := NewFeed()
	items := feed.Notifications(nil, nil)
	if len(items) != 2 {
		t.Fatalf("expected only system notifications, got %d", len(items))
	}
	if items[0].Title != "Welcome back" {
		t.Fatalf("anonymous greeting expected, got %q", items[0].Title)
	}
}

func TestTasksSkipTerminalProjects(t *testing.T) {
	now := time.Now()
	feed := NewFeed()

	tasks := feed.Tasks(seedProjects(now))
	for _, task := range tasks {
		if task.Project == "Old archive" {
			t.Fatalf("completed projects should not produce tasks")
		}
	}
	found := false
	for _, task := range tasks {
		if task.Project == "Team feed" {
			found = true
		}
	}
	if !found {
		t.Fatalf("in-flight projects should produce a task row")
	}
}

func TestCalendarAnchorsToFirstProject(t *testing.T) {
	now := time.Now()
	feed := NewFeed()
	projects := seedProjects(now)

	events := feed.Calendar(projects)
	if len(events) != 3 {
		t.Fatalf("expected 3 events with projects present, got %d", len(events))
	}
	if events[2].Title != "Team feed review" {
		t.Fatalf("project review event expected, got %q", events[2].Title)
	}

	if got := feed.Calendar(nil); len(got) != 2 {
		t.Fatalf("expected 2 fixed events without projects, got %d", len(got))
	}
}
