// Package projects provides the typed client operations for the project
// surface of the Flow PMS API plus client-side validation and list helpers.
package projects

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/flowpms/flowpms-go/internal/notify"
	"github.com/flowpms/flowpms-go/pkg/apiclient"
	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
	"github.com/google/uuid"
)

type apiDoer interface {
	Get(ctx context.Context, path string, query url.Values, out any) (*types.Envelope, error)
	Post(ctx context.Context, path string, query url.Values, body, out any) (*types.Envelope, error)
	Put(ctx context.Context, path string, query url.Values, body, out any) (*types.Envelope, error)
	Patch(ctx context.Context, path string, query url.Values, body, out any) (*types.Envelope, error)
	Delete(ctx context.Context, path string, query url.Values, out any) (*types.Envelope, error)
}

// Service exposes project operations.
type Service struct {
	api      apiDoer
	notifier notify.Notifier
	logg     *logger.Logger
}

// NewService builds a project service over the shared API adapter.
func NewService(api apiDoer, notifier notify.Notifier, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client required")
	}
	return &Service{api: api, notifier: notifier, logg: logg}, nil
}

// GetAll lists every project visible to the caller.
func (s *Service) GetAll(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.EndpointProjects, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPublic lists only publicly visible projects.
func (s *Service) GetPublic(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.EndpointProjectsPublic, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one project.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if _, err := s.api.Get(ctx, apiclient.ProjectPath(id.String()), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetUserProjects lists the projects owned by the given user.
func (s *Service) GetUserProjects(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.ProjectsByUserPath(userID.String()), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create dispatches a validated project create for the owner. The returned
// project is the backend's authoritative representation.
func (s *Service) Create(ctx context.Context, input models.ProjectInput, ownerID uuid.UUID) (*models.Project, error) {
	if result := ValidateProjectInput(input); !result.IsValid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, result.Errors[0]).
			WithDetails(result.Errors)
	}
	query := url.Values{"ownerId": {ownerID.String()}}
	var project models.Project
	if _, err := s.api.Post(ctx, apiclient.EndpointProjects, query, input, &project); err != nil {
		return nil, err
	}
	s.notifySuccess(ctx, "project created")
	return &project, nil
}

// Update dispatches a validated project update on behalf of the user.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input models.ProjectInput, userID uuid.UUID) (*models.Project, error) {
	if result := ValidateProjectInput(input); !result.IsValid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, result.Errors[0]).
			WithDetails(result.Errors)
	}
	query := url.Values{"userId": {userID.String()}}
	var project models.Project
	if _, err := s.api.Put(ctx, apiclient.ProjectPath(id.String()), query, input, &project); err != nil {
		return nil, err
	}
	s.notifySuccess(ctx, "project updated")
	return &project, nil
}

// Delete removes the project on behalf of the user.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := url.Values{"userId": {userID.String()}}
	if _, err := s.api.Delete(ctx, apiclient.ProjectPath(id.String()), query, nil); err != nil {
		return err
	}
	s.notifySuccess(ctx, "project deleted")
	return nil
}

// Search finds projects matching the keyword.
func (s *Service) Search(ctx context.Context, keyword string) ([]models.Project, error) {
	query := url.Values{"keyword": {keyword}}
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.EndpointProjectsSearch, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByCategory lists projects in the given category.
func (s *Service) ByCategory(ctx context.Context, category enums.ProjectCategory) ([]models.Project, error) {
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.ProjectsByCategoryPath(category.String()), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByStatus lists projects in the given status.
func (s *Service) ByStatus(ctx context.Context, status enums.ProjectStatus) ([]models.Project, error) {
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.ProjectsByStatusPath(status.String()), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentlyUpdated lists projects updated within the given number of days.
func (s *Service) RecentlyUpdated(ctx context.Context, days int) ([]models.Project, error) {
	query := url.Values{"days": {strconv.Itoa(days)}}
	var out []models.Project
	if _, err := s.api.Get(ctx, apiclient.EndpointProjectsRecent, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeStatus moves the project to a new lifecycle status.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, status enums.ProjectStatus, userID uuid.UUID) (*models.Project, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid project status %q", status))
	}
	query := url.Values{"status": {status.String()}, "userId": {userID.String()}}
	var project models.Project
	if _, err := s.api.Patch(ctx, apiclient.ProjectStatusPath(id.String()), query, nil, &project); err != nil {
		return nil, err
	}
	s.notifySuccess(ctx, fmt.Sprintf("project status changed to %s", status))
	return &project, nil
}

// Stats fetches the project aggregates.
func (s *Service) Stats(ctx context.Context) (*models.ProjectStats, error) {
	var out models.ProjectStats
	if _, err := s.api.Get(ctx, apiclient.EndpointProjectsStats, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) notifySuccess(ctx context.Context, message string) {
	if s.notifier != nil {
		s.notifier.Success(ctx, message)
	}
}
