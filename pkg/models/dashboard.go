package models

import "time"

// Notification is a transient dashboard display item generated from current
// state plus seed data; it is not persisted and not part of core state.
type Notification struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Kind    string    `json:"kind"`
	SentAt  time.Time `json:"sentAt"`
	Unread  bool      `json:"unread"`
	LinkURL string    `json:"linkUrl,omitempty"`
}

// ChatMessage is a transient mocked chat line for the dashboard widget.
type ChatMessage struct {
	ID       int       `json:"id"`
	Sender   string    `json:"sender"`
	Icon     string    `json:"icon,omitempty"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sentAt"`
	Outgoing bool      `json:"outgoing"`
}

// CalendarEvent is a transient mocked calendar entry for the dashboard.
type CalendarEvent struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	ProjectID string    `json:"projectId,omitempty"`
	AllDay    bool      `json:"allDay"`
}

// TaskItem is a transient mocked task row for the dashboard widget.
type TaskItem struct {
	ID      int        `json:"id"`
	Title   string     `json:"title"`
	Done    bool       `json:"done"`
	DueAt   *time.Time `json:"dueAt,omitempty"`
	Project string     `json:"project,omitempty"`
}
