package mockapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/models"
)

// menuEntry is a static navigation target surfaced by unified search.
type menuEntry struct {
	Title       string
	Description string
	URL         string
	Icon        string
}

var menuEntries = []menuEntry{
	{Title: "Dashboard", Description: "Overview of your workspace", URL: "/", Icon: "🏠"},
	{Title: "Projects", Description: "Browse and manage projects", URL: "/projects", Icon: "📁"},
	{Title: "Members", Description: "People in your workspace", URL: "/members", Icon: "👥"},
	{Title: "Settings", Description: "Profile and workspace settings", URL: "/settings", Icon: "⚙️"},
}

// blogPost is a static announcement surfaced by unified search.
type blogPost struct {
	Title       string
	Description string
	URL         string
}

var blogPosts = []blogPost{
	{Title: "Getting started with Flow", Description: "A tour of boards, feeds, and search", URL: "/blog/getting-started"},
	{Title: "Organizing work with categories", Description: "Feed, task, gantt, calendar, and file projects", URL: "/blog/categories"},
	{Title: "Release notes", Description: "What changed this month", URL: "/blog/release-notes"},
}

// Repo is the mock API's in-memory dataset. It is seeded deterministically
// and safe for concurrent handlers.
type Repo struct {
	mu           sync.RWMutex
	users        []models.User
	projects     []models.Project
	defaultUser  uuid.UUID
	searchCounts map[string]int
	now          func() time.Time
}

// NewRepo seeds the dataset: a default signed-in user, a handful of
// teammates, and projects spread across categories and statuses.
func NewRepo() *Repo {
	r := &Repo{
		searchCounts: make(map[string]int),
		now:          time.Now,
	}
	r.seed()
	return r
}

func (r *Repo) seed() {
	now := r.now()

	jordan := models.User{
		ID:            uuid.New(),
		Username:      "jordan",
		Email:         "jordan@flowpms.dev",
		DisplayName:   "Jordan Lee",
		ProfileIcon:   "🦊",
		StatusMessage: "Shipping the feed board",
		Role:          enums.UserRoleAdmin,
		IsActive:      true,
		CreatedAt:     now.AddDate(0, -6, 0),
		UpdatedAt:     now.AddDate(0, 0, -1),
	}
	mina := models.User{
		ID:          uuid.New(),
		Username:    "mina",
		Email:       "mina@flowpms.dev",
		DisplayName: "Mina Park",
		ProfileIcon: "🐰",
		Role:        enums.UserRoleManager,
		IsActive:    true,
		CreatedAt:   now.AddDate(0, -4, 0),
		UpdatedAt:   now.AddDate(0, 0, -3),
	}
	sam := models.User{
		ID:            uuid.New(),
		Username:      "sam",
		Email:         "sam@flowpms.dev",
		DisplayName:   "Sam Rivera",
		ProfileIcon:   "🐢",
		StatusMessage: "Out until Monday",
		Role:          enums.UserRoleUser,
		IsActive:      true,
		CreatedAt:     now.AddDate(0, -2, 0),
		UpdatedAt:     now.AddDate(0, 0, -40),
	}
	r.users = []models.User{jordan, mina, sam}
	r.defaultUser = jordan.ID

	r.projects = []models.Project{
		{
			ID: uuid.New(), Title: "Team feed", Category: enums.ProjectCategoryFeed,
			Status: enums.ProjectStatusInProgress, IsPublic: true, HasAdminAccess: true,
			Description: "Announcements and daily updates", OwnerID: jordan.ID,
			CreatedAt: now.AddDate(0, -3, 0), UpdatedAt: now.AddDate(0, 0, -1),
		},
		{
			ID: uuid.New(), Title: "Launch checklist", Category: enums.ProjectCategoryTask,
			Status: enums.ProjectStatusInProgress, IsPublic: false, HasAdminAccess: true,
			Description: "Everything left before the beta launch", OwnerID: jordan.ID,
			CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID: uuid.New(), Title: "Quarterly roadmap", Category: enums.ProjectCategoryGantt,
			Status: enums.ProjectStatusScheduled, IsPublic: true, HasAdminAccess: false,
			Description: "Milestones for the next quarter", OwnerID: mina.ID,
			CreatedAt: now.AddDate(0, -1, -15), UpdatedAt: now.AddDate(0, 0, -7),
		},
		{
			ID: uuid.New(), Title: "Event calendar", Category: enums.ProjectCategoryCalendar,
			Status: enums.ProjectStatusCompleted, IsPublic: true, HasAdminAccess: false,
			Description: "Shared team calendar", OwnerID: mina.ID,
			CreatedAt: now.AddDate(0, -5, 0), UpdatedAt: now.AddDate(0, -1, 0),
		},
		{
			ID: uuid.New(), Title: "Design assets", Category: enums.ProjectCategoryFile,
			Status: enums.ProjectStatusOnHold, IsPublic: false, HasAdminAccess: false,
			Description: "Logos, fonts, and brand files", OwnerID: sam.ID,
			CreatedAt: now.AddDate(0, 0, -20), UpdatedAt: now.AddDate(0, 0, -10),
		},
	}
}

// DefaultUser returns the seeded signed-in user.
func (r *Repo) DefaultUser() models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, _ := r.userByIDLocked(r.defaultUser)
	return user
}

// Users lists active users.
func (r *Repo) Users() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out
}

// UserByID fetches one user, active or not.
func (r *Repo) UserByID(id uuid.UUID) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.userByIDLocked(id)
	if !ok {
		return models.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return user, nil
}

// UserByUsername fetches one user by exact username.
func (r *Repo) UserByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

// CreateUser registers a user. Usernames and emails are unique.
func (r *Repo) CreateUser(input models.UserInput) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == input.Username {
			return models.User{}, pkgerrors.New(pkgerrors.CodeValidation, "username is already taken")
		}
		if u.Email == input.Email {
			return models.User{}, pkgerrors.New(pkgerrors.CodeValidation, "email is already registered")
		}
	}

	now := r.now()
	role := input.Role
	if role == "" {
		role = enums.UserRoleUser
	}
	user := models.User{
		ID:            uuid.New(),
		Username:      input.Username,
		Email:         input.Email,
		DisplayName:   input.DisplayName,
		ProfileIcon:   input.ProfileIcon,
		StatusMessage: input.StatusMessage,
		Role:          role,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.users = append(r.users, user)
	return user, nil
}

// UpdateUser replaces a user's mutable fields.
func (r *Repo) UpdateUser(id uuid.UUID, input models.UserInput) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID != id {
			continue
		}
		u.Username = input.Username
		u.Email = input.Email
		u.DisplayName = input.DisplayName
		u.ProfileIcon = input.ProfileIcon
		u.StatusMessage = input.StatusMessage
		if input.Role != "" {
			u.Role = input.Role
		}
		u.UpdatedAt = r.now()
		r.users[i] = u
		return u, nil
	}
	return models.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

// UpdateUserStatus patches presence fields only.
func (r *Repo) UpdateUserStatus(id uuid.UUID, input models.StatusInput) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID != id {
			continue
		}
		if input.ProfileIcon != nil {
			u.ProfileIcon = *input.ProfileIcon
		}
		if input.StatusMessage != nil {
			u.StatusMessage = *input.StatusMessage
		}
		u.UpdatedAt = r.now()
		r.users[i] = u
		return u, nil
	}
	return models.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

// DeactivateUser soft-deletes; the row stays for history.
func (r *Repo) DeactivateUser(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].IsActive = false
			r.users[i].UpdatedAt = r.now()
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

// SearchUsers matches the keyword against username, display name, and email.
func (r *Repo) SearchUsers(keyword string) []models.User {
	needle := strings.ToLower(keyword)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, u := range r.users {
		if !u.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), needle) ||
			strings.Contains(strings.ToLower(u.DisplayName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// UsersByRole lists active users holding the role.
func (r *Repo) UsersByRole(role enums.UserRole) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, u := range r.users {
		if u.IsActive && u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// UsersWithStatus lists active users with a status message set.
func (r *Repo) UsersWithStatus() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, u := range r.users {
		if u.IsActive && u.StatusMessage != "" {
			out = append(out, u)
		}
	}
	return out
}

// UsersRecentlyActive lists users updated within the window.
func (r *Repo) UsersRecentlyActive(days int) []models.User {
	if days <= 0 {
		days = 30
	}
	cutoff := r.now().AddDate(0, 0, -days)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, u := range r.users {
		if u.IsActive && u.UpdatedAt.After(cutoff) {
			out = append(out, u)
		}
	}
	return out
}

// UsersWithProjects lists active users owning at least one project, with
// their project counts filled in.
func (r *Repo) UsersWithProjects() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[uuid.UUID]int)
	for _, p := range r.projects {
		counts[p.OwnerID]++
	}
	var out []models.User
	for _, u := range r.users {
		if !u.IsActive || counts[u.ID] == 0 {
			continue
		}
		u.ProjectCount = counts[u.ID]
		out = append(out, u)
	}
	return out
}

// UserStats aggregates the user table.
func (r *Repo) UserStats() models.UserStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := models.UserStats{ByRole: make(map[string]int)}
	for _, u := range r.users {
		stats.TotalUsers++
		if u.IsActive {
			stats.ActiveUsers++
		}
		stats.ByRole[u.Role.String()]++
	}
	return stats
}

func (r *Repo) userByIDLocked(id uuid.UUID) (models.User, bool) {
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
