package mockapi

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/models"
)

// Projects lists every project, newest first.
func (r *Repo) Projects() []models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortNewestFirst(r.projects)
}

// PublicProjects lists only publicly visible projects.
func (r *Repo) PublicProjects() []models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.IsPublic {
			out = append(out, p)
		}
	}
	return sortNewestFirst(out)
}

// ProjectByID fetches one project.
func (r *Repo) ProjectByID(id uuid.UUID) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
}

// ProjectsByUser lists a user's projects, newest first.
func (r *Repo) ProjectsByUser(ownerID uuid.UUID) []models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return sortNewestFirst(out)
}

// CreateProject inserts a project owned by the given user.
func (r *Repo) CreateProject(input models.ProjectInput, ownerID uuid.UUID) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.userByIDLocked(ownerID); !ok {
		return models.Project{}, pkgerrors.New(pkgerrors.CodeNotFound, "owner not found")
	}

	now := r.now()
	status := input.Status
	if status == "" {
		status = enums.ProjectStatusInProgress
	}
	project := models.Project{
		ID:             uuid.New(),
		Title:          input.Title,
		Category:       input.Category,
		Status:         status,
		IsPublic:       input.IsPublic,
		HasAdminAccess: input.HasAdminAccess,
		Description:    input.Description,
		OwnerID:        ownerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.projects = append(r.projects, project)
	return project, nil
}

// UpdateProject replaces a project's mutable fields. Only the owner or an
// admin may update.
func (r *Repo) UpdateProject(id uuid.UUID, input models.ProjectInput, userID uuid.UUID) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.projects {
		if p.ID != id {
			continue
		}
		if err := r.requireProjectAccessLocked(p, userID); err != nil {
			return models.Project{}, err
		}
		p.Title = input.Title
		p.Category = input.Category
		if input.Status != "" {
			p.Status = input.Status
		}
		p.IsPublic = input.IsPublic
		p.HasAdminAccess = input.HasAdminAccess
		p.Description = input.Description
		p.UpdatedAt = r.now()
		r.projects[i] = p
		return p, nil
	}
	return models.Project{}, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
}

// DeleteProject removes a project. Only the owner or an admin may delete.
func (r *Repo) DeleteProject(id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.projects {
		if p.ID != id {
			continue
		}
		if err := r.requireProjectAccessLocked(p, userID); err != nil {
			return err
		}
		r.projects = append(r.projects[:i], r.projects[i+1:]...)
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
}

// SearchProjects matches the keyword against title and description.
func (r *Repo) SearchProjects(keyword string) []models.Project {
	needle := strings.ToLower(keyword)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return sortNewestFirst(out)
}

// ProjectsByCategory lists projects in the category, newest first.
func (r *Repo) ProjectsByCategory(category enums.ProjectCategory) []models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return sortNewestFirst(out)
}

// ProjectsByStatus lists projects in the status, newest first.
func (r *Repo) ProjectsByStatus(status enums.ProjectStatus) []models.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return sortNewestFirst(out)
}

// RecentProjects lists projects updated within the window.
func (r *Repo) RecentProjects(days int) []models.Project {
	if days <= 0 {
		days = 7
	}
	cutoff := r.now().AddDate(0, 0, -days)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Project
	for _, p := range r.projects {
		if p.UpdatedAt.After(cutoff) {
			out = append(out, p)
		}
	}
	return sortNewestFirst(out)
}

// ChangeProjectStatus moves the project's lifecycle status.
func (r *Repo) ChangeProjectStatus(id uuid.UUID, status enums.ProjectStatus, userID uuid.UUID) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.projects {
		if p.ID != id {
			continue
		}
		if err := r.requireProjectAccessLocked(p, userID); err != nil {
			return models.Project{}, err
		}
		p.Status = status
		p.UpdatedAt = r.now()
		r.projects[i] = p
		return p, nil
	}
	return models.Project{}, pkgerrors.New(pkgerrors.CodeNotFound, "project not found")
}

// ProjectStats aggregates the project table.
func (r *Repo) ProjectStats() models.ProjectStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := models.ProjectStats{
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
	}
	for _, p := range r.projects {
		stats.TotalProjects++
		stats.ByCategory[p.Category.String()]++
		stats.ByStatus[p.Status.String()]++
	}
	return stats
}

func (r *Repo) requireProjectAccessLocked(p models.Project, userID uuid.UUID) error {
	if p.OwnerID == userID {
		return nil
	}
	if user, ok := r.userByIDLocked(userID); ok && user.Role == enums.UserRoleAdmin {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "you do not have access to this project")
}

func sortNewestFirst(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
