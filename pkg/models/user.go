package models

import (
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/google/uuid"
)

// User represents the canonical identity entity as returned by the backend.
type User struct {
	ID            uuid.UUID      `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	DisplayName   string         `json:"displayName"`
	ProfileIcon   string         `json:"profileIcon,omitempty"`
	StatusMessage string         `json:"statusMessage,omitempty"`
	Role          enums.UserRole `json:"role"`
	IsActive      bool           `json:"isActive"`
	ProjectCount  int            `json:"projectCount,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// UserInput carries the mutable user fields submitted to create/update calls.
type UserInput struct {
	Username      string         `json:"username" validate:"required,min=3,max=50"`
	Email         string         `json:"email" validate:"required,email"`
	DisplayName   string         `json:"displayName" validate:"required,max=100"`
	ProfileIcon   string         `json:"profileIcon,omitempty"`
	StatusMessage string         `json:"statusMessage,omitempty" validate:"max=255"`
	Role          enums.UserRole `json:"role,omitempty"`
	IsActive      bool           `json:"isActive"`
}

// StatusInput carries a presence update: icon and/or status message.
type StatusInput struct {
	ProfileIcon   *string `json:"profileIcon,omitempty"`
	StatusMessage *string `json:"statusMessage,omitempty"`
}

// ProfileIcon pairs a selectable presence icon with its label.
type ProfileIcon struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// UserStats is the aggregate shape served by the user stats endpoint.
type UserStats struct {
	TotalUsers  int            `json:"totalUsers"`
	ActiveUsers int            `json:"activeUsers"`
	ByRole      map[string]int `json:"byRole"`
}
