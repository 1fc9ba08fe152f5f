// Package state holds the shared application state: the current user and
// the project list every pane renders from. Mutations dispatch through the
// backend first and apply the authoritative response afterwards, so the
// store never shows data the backend has not confirmed.
package state

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/google/uuid"
)

type userAPI interface {
	InitializeDefault(ctx context.Context) (*models.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input models.StatusInput) (*models.User, error)
}

type projectAPI interface {
	GetUserProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	Create(ctx context.Context, input models.ProjectInput, ownerID uuid.UUID) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, input models.ProjectInput, userID uuid.UUID) (*models.Project, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// Snapshot is an immutable copy of the store's contents.
type Snapshot struct {
	CurrentUser *models.User
	Projects    []models.Project
}

// Store is the single source of truth for the signed-in user and their
// project list. All methods are safe for concurrent use.
type Store struct {
	users    userAPI
	projects projectAPI
	logg     *logger.Logger

	mu          sync.Mutex
	currentUser *models.User
	projectList []models.Project
	subscribers []func(Snapshot)
}

// NewStore builds the store over the user and project services.
func NewStore(users userAPI, projects projectAPI, logg *logger.Logger) (*Store, error) {
	if users == nil || projects == nil {
		return nil, fmt.Errorf("user and project services required")
	}
	return &Store{users: users, projects: projects, logg: logg}, nil
}

// Subscribe registers a listener invoked with a snapshot after every applied
// mutation.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns an independent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// CurrentUser returns a copy of the signed-in user, or nil before Initialize.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUser(s.currentUser)
}

// Projects returns a copy of the project list, newest first.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProjects(s.projectList)
}

// Initialize resolves the default user and loads their projects. A project
// load failure leaves the user signed in with an empty list rather than
// failing the whole boot.
func (s *Store) Initialize(ctx context.Context) error {
	user, err := s.users.InitializeDefault(ctx)
	if err != nil {
		return err
	}

	projectList, err := s.projects.GetUserProjects(ctx, user.ID)
	if err != nil {
		s.logg.Error(s.logg.WithUserID(ctx, user.ID.String()), "loading user projects failed", err)
		projectList = nil
	}

	s.mu.Lock()
	s.currentUser = user
	s.projectList = projectList
	s.mu.Unlock()
	s.publish()
	return nil
}

// CreateProject dispatches the create and prepends the backend's project to
// the list. If the backend echoes an id already present, the existing entry
// is replaced instead of duplicated.
func (s *Store) CreateProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, input, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if i := indexOf(s.projectList, created.ID); i >= 0 {
		s.projectList[i] = *created
	} else {
		s.projectList = append([]models.Project{*created}, s.projectList...)
	}
	s.mu.Unlock()
	s.publish()
	return created, nil
}

// UpdateProject dispatches the update and replaces the matching entry in
// place, keeping list order. The backend response wins over the submitted
// input. An id the store does not hold is applied as a no-op list change.
func (s *Store) UpdateProject(ctx context.Context, id uuid.UUID, input models.ProjectInput) (*models.Project, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	updated, err := s.projects.Update(ctx, id, input, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if i := indexOf(s.projectList, updated.ID); i >= 0 {
		s.projectList[i] = *updated
	}
	s.mu.Unlock()
	s.publish()
	return updated, nil
}

// DeleteProject dispatches the delete and removes the entry. Deleting an id
// the store does not hold leaves the list unchanged.
func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.mu.Lock()
	if i := indexOf(s.projectList, id); i >= 0 {
		s.projectList = append(s.projectList[:i], s.projectList[i+1:]...)
	}
	s.mu.Unlock()
	s.publish()
	return nil
}

// UpdateUserStatus dispatches the presence change and replaces the current
// user with the backend's record.
func (s *Store) UpdateUserStatus(ctx context.Context, input models.StatusInput) (*models.User, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateStatus(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.currentUser = updated
	s.mu.Unlock()
	s.publish()
	return updated, nil
}

// requireUser guards mutations that need a signed-in user.
func (s *Store) requireUser() (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodePrecondition, "no signed-in user")
	}
	return s.currentUser.ID, nil
}

func (s *Store) publish() {
	s.mu.Lock()
	subscribers := s.subscribers
	snap := s.snapshotLocked()
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(snap)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentUser: copyUser(s.currentUser),
		Projects:    copyProjects(s.projectList),
	}
}

func indexOf(projectList []models.Project, id uuid.UUID) int {
	for i, p := range projectList {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func copyUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}
	u := *user
	return &u
}

func copyProjects(projectList []models.Project) []models.Project {
	if projectList == nil {
		return nil
	}
	out := make([]models.Project, len(projectList))
	copy(out, projectList)
	return out
}
