// Package users provides the typed client operations for the user surface
// of the Flow PMS API plus the client-side helpers the widgets rely on.
package users

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/flowpms/flowpms-go/internal/notify"
	"github.com/flowpms/flowpms-go/pkg/apiclient"
	"github.com/flowpms/flowpms-go/pkg/auth"
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

// Service exposes user operations.
type Service struct {
	api      apiDoer
	tokens   *auth.TokenStore
	notifier notify.Notifier
	logg     *logger.Logger
}

// NewService builds a user service over the shared API adapter.
func NewService(api apiDoer, tokens *auth.TokenStore, notifier notify.Notifier, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client required")
	}
	return &Service{api: api, tokens: tokens, notifier: notifier, logg: logg}, nil
}

// InitializeDefault asks the backend for the seeded development user.
func (s *Service) InitializeDefault(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := s.api.Post(ctx, apiclient.EndpointUsersInit, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll lists all active users.
func (s *Service) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if _, err := s.api.Get(ctx, apiclient.EndpointUsers, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one user.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if _, err := s.api.Get(ctx, apiclient.UserPath(id.String()), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername fetches one user by username.
func (s *Service) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if _, err := s.api.Get(ctx, apiclient.UserByUsernamePath(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create registers a new user. Input is validated before dispatch.
func (s *Service) Create(ctx context.Context, input models.UserInput) (*models.User, error) {
	if result := ValidateUserInput(input); !result.IsValid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user validation failed").
			WithDetails(result.Errors)
	}
	var user models.User
	if _, err := s.api.Post(ctx, apiclient.EndpointUsers, nil, input, &user); err != nil {
		return nil, err
	}
	s.notifySuccess(ctx, "user created")
	return &user, nil
}

// Update replaces a user's mutable fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input models.UserInput) (*models.User, error) {
	if result := ValidateUserInput(input); !result.IsValid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user validation failed").
			WithDetails(result.Errors)
	}
	var user models.User
	if _, err := s.api.Put(ctx, apiclient.UserPath(id.String()), nil, input, &user); err != nil {
		return nil, err
	}
	s.notifySuccess(ctx, "user updated")
	return &user, nil
}

// UpdateStatus patches the presence icon and/or status message. The backend
// response is the authoritative user record.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, input models.StatusInput) (*models.User, error) {
	if input.StatusMessage != nil && len([]rune(*input.StatusMessage)) > maxStatusMessageLen {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("status message must be at most %d characters", maxStatusMessageLen))
	}
	var user models.User
	if _, err := s.api.Patch(ctx, apiclient.UserStatusPath(id.String()), nil, input, &user); err != nil {
		return nil, err
	}
	s.notifySuccess(ctx, "status updated")
	return &user, nil
}

// Deactivate soft-deletes a user (isActive=false); users are never hard
// deleted from the client side.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.api.Delete(ctx, apiclient.UserPath(id.String()), nil, nil); err != nil {
		return err
	}
	s.notifySuccess(ctx, "user deactivated")
	return nil
}

// Search finds users matching the keyword.
func (s *Service) Search(ctx context.Context, keyword string) ([]models.User, error) {
	query := url.Values{"keyword": {keyword}}
	var out []models.User
	if _, err := s.api.Get(ctx, apiclient.EndpointUsersSearch, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByRole lists users holding the given role.
func (s *Service) ByRole(ctx context.Context, role string) ([]models.User, error) {
	var out []models.User
	if _, err := s.api.Get(ctx, apiclient.UsersByRolePath(role), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithStatus lists users that have a status message set.
func (s *Service) WithStatus(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if _, err := s.api.Get(ctx, apiclient.EndpointUsersWithStatus, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentlyActive lists users active within the given number of days.
func (s *Service) RecentlyActive(ctx context.Context, days int) ([]models.User, error) {
	query := url.Values{"days": {strconv.Itoa(days)}}
	var out []models.User
	if _, err := s.api.Get(ctx, apiclient.EndpointUsersRecent, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithProjects lists users owning at least one project.
func (s *Service) WithProjects(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if _, err := s.api.Get(ctx, apiclient.EndpointUsersWithProjects, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches the user aggregates.
func (s *Service) Stats(ctx context.Context) (*models.UserStats, error) {
	var out models.UserStats
	if _, err := s.api.Get(ctx, apiclient.EndpointUsersStats, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Authenticate signs in with a username or email and stores the returned
// bearer token under the fixed kv key.
func (s *Service) Authenticate(ctx context.Context, identifier string) (*models.User, error) {
	body := map[string]string{"identifier": identifier}
	var user models.User
	env, err := s.api.Post(ctx, apiclient.EndpointAuthLogin, nil, body, &user)
	if err != nil {
		return nil, err
	}
	if env.Token != "" && s.tokens != nil {
		if saveErr := s.tokens.Save(ctx, env.Token); saveErr != nil && s.logg != nil {
			s.logg.Error(ctx, "persisting auth token failed", saveErr)
		}
	}
	s.notifySuccess(ctx, "signed in")
	return &user, nil
}

// Logout drops the locally stored token. Local-only, never fails the caller.
func (s *Service) Logout(ctx context.Context) {
	if s.tokens != nil {
		if err := s.tokens.Clear(ctx); err != nil && s.logg != nil {
			s.logg.Error(ctx, "clearing auth token failed", err)
		}
	}
	s.notifySuccess(ctx, "signed out")
}

// CurrentClaims decodes the locally stored token's claims, if any.
func (s *Service) CurrentClaims(ctx context.Context) *auth.Claims {
	if s.tokens == nil {
		return nil
	}
	token := s.tokens.Token(ctx)
	if token == "" {
		return nil
	}
	claims, err := auth.DecodeClaims(token)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "stored token is not decodable")
		}
		return nil
	}
	return claims
}

func (s *Service) notifySuccess(ctx context.Context, message string) {
	if s.notifier != nil {
		s.notifier.Success(ctx, message)
	}
}
