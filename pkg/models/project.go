package models

import (
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/google/uuid"
)

// Project represents a workspace owned by a user.
type Project struct {
	ID             uuid.UUID             `json:"id"`
	Title          string                `json:"title"`
	Category       enums.ProjectCategory `json:"category"`
	Status         enums.ProjectStatus   `json:"status"`
	IsPublic       bool                  `json:"isPublic"`
	HasAdminAccess bool                  `json:"hasAdminAccess"`
	Description    string                `json:"description,omitempty"`
	OwnerID        uuid.UUID             `json:"ownerId"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// ProjectInput carries the mutable project fields submitted to the backend.
type ProjectInput struct {
	Title          string                `json:"title"`
	Category       enums.ProjectCategory `json:"category"`
	Status         enums.ProjectStatus   `json:"status,omitempty"`
	IsPublic       bool                  `json:"isPublic"`
	HasAdminAccess bool                  `json:"hasAdminAccess"`
	Description    string                `json:"description,omitempty"`
}

// ProjectStats is the aggregate shape served by the project stats endpoint.
type ProjectStats struct {
	TotalProjects int            `json:"totalProjects"`
	ByCategory    map[string]int `json:"byCategory"`
	ByStatus      map[string]int `json:"byStatus"`
}
