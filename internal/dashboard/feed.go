// Package dashboard generates the transient widget content shown around the
// project list: notifications, chat, calendar, and task seeds, plus the
// maintenance notice dismissal. Nothing here talks to the backend.
package dashboard

import (
	"fmt"
	"time"

	"github.com/flowpms/flowpms-go/pkg/models"
)

// Feed derives the dashboard widget content from current state. Entries are
// regenerated on every call and never persisted.
type Feed struct {
	now func() time.Time
}

// NewFeed returns a feed using the wall clock.
func NewFeed() *Feed {
	return &Feed{now: time.Now}
}

// Notifications builds the notification panel for the given state. Project
// entries come first, newest project first, followed by fixed system items.
func (f *Feed) Notifications(user *models.User, projectList []models.Project) []models.Notification {
	now := f.now()
	var out []models.Notification

	id := 1
	for _, p := range projectList {
		out = append(out, models.Notification{
			ID:      id,
			Title:   "Project update",
			Body:    fmt.Sprintf("%q moved to %s", p.Title, p.Status),
			Kind:    "project",
			SentAt:  p.UpdatedAt,
			Unread:  now.Sub(p.UpdatedAt) < 24*time.Hour,
			LinkURL: "/projects/" + p.ID.String(),
		})
		id++
	}

	greeting := "Welcome back"
	if user != nil && user.DisplayName != "" {
		greeting = "Welcome back, " + user.DisplayName
	}
	out = append(out,
		models.Notification{
			ID:     id,
			Title:  greeting,
			Body:   "Your workspace is up to date.",
			Kind:   "system",
			SentAt: now,
			Unread: true,
		},
		models.Notification{
			ID:     id + 1,
			Title:  "Weekly digest",
			Body:   "Activity summary for the past week is ready.",
			Kind:   "digest",
			SentAt: now.AddDate(0, 0, -1),
		},
	)
	return out
}

// Chat builds the mocked chat transcript.
func (f *Feed) Chat(user *models.User) []models.ChatMessage {
	now := f.now()
	sender := "You"
	icon := ""
	if user != nil {
		if user.DisplayName != "" {
			sender = user.DisplayName
		}
		icon = user.ProfileIcon
	}
	return []models.ChatMessage{
		{ID: 1, Sender: "Mina", Icon: "🦊", Body: "Standup moved to 10:30 today.", SentAt: now.Add(-2 * time.Hour)},
		{ID: 2, Sender: sender, Icon: icon, Body: "Got it, see you there.", SentAt: now.Add(-110 * time.Minute), Outgoing: true},
		{ID: 3, Sender: "Mina", Icon: "🦊", Body: "Can you review the feed board before then?", SentAt: now.Add(-100 * time.Minute)},
	}
}

// Calendar builds this week's mocked schedule, anchored to project activity
// when projects exist.
func (f *Feed) Calendar(projectList []models.Project) []models.CalendarEvent {
	now := f.now()
	morning := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location())

	events := []models.CalendarEvent{
		{ID: 1, Title: "Team standup", StartsAt: morning.Add(30 * time.Minute), EndsAt: morning.Add(45 * time.Minute)},
		{ID: 2, Title: "Planning", StartsAt: morning.AddDate(0, 0, 1), EndsAt: morning.AddDate(0, 0, 1).Add(time.Hour)},
	}
	if len(projectList) > 0 {
		p := projectList[0]
		events = append(events, models.CalendarEvent{
			ID:        3,
			Title:     p.Title + " review",
			StartsAt:  morning.AddDate(0, 0, 2),
			EndsAt:    morning.AddDate(0, 0, 2).Add(time.Hour),
			ProjectID: p.ID.String(),
		})
	}
	return events
}

// Tasks builds the mocked task list, one row per in-flight project plus
// fixed personal items.
func (f *Feed) Tasks(projectList []models.Project) []models.TaskItem {
	now := f.now()
	tomorrow := now.AddDate(0, 0, 1)

	out := []models.TaskItem{
		{ID: 1, Title: "Review inbox", Done: true},
		{ID: 2, Title: "Update status message", DueAt: &tomorrow},
	}
	id := 3
	for _, p := range projectList {
		if p.Status.IsTerminal() {
			continue
		}
		due := p.UpdatedAt.AddDate(0, 0, 7)
		out = append(out, models.TaskItem{
			ID:      id,
			Title:   "Check progress on " + p.Title,
			DueAt:   &due,
			Project: p.Title,
		})
		id++
	}
	return out
}
