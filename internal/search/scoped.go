package search

import (
	"context"
	"net/url"
	"strconv"

	"github.com/flowpms/flowpms-go/pkg/apiclient"
	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/models"
)

// Scoped searches hit dedicated endpoints directly, without the debounce
// pipeline. They share the query validation contract.

// Projects searches project titles and descriptions only.
func (e *Engine) Projects(ctx context.Context, query string) ([]models.SearchResult, error) {
	return e.scoped(ctx, "projects", apiclient.EndpointSearchProjects, query, nil)
}

// Users searches usernames and display names only.
func (e *Engine) Users(ctx context.Context, query string) ([]models.SearchResult, error) {
	return e.scoped(ctx, "users", apiclient.EndpointSearchUsers, query, nil)
}

// ByCategory searches projects within one category.
func (e *Engine) ByCategory(ctx context.Context, query string, category enums.ProjectCategory) ([]models.SearchResult, error) {
	return e.scoped(ctx, "category", apiclient.SearchByCategoryPath(category.String()), query, nil)
}

// ForUser searches within one user's projects.
func (e *Engine) ForUser(ctx context.Context, query, userID string) ([]models.SearchResult, error) {
	return e.scoped(ctx, "user", apiclient.SearchForUserPath(userID), query, nil)
}

// WithStatus searches user status messages.
func (e *Engine) WithStatus(ctx context.Context, query string) ([]models.SearchResult, error) {
	return e.scoped(ctx, "status", apiclient.EndpointSearchStatus, query, nil)
}

// Quick returns a truncated result list for typeahead panes.
func (e *Engine) Quick(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	extra := url.Values{}
	if limit > 0 {
		extra.Set("limit", strconv.Itoa(limit))
	}
	return e.scoped(ctx, "quick", apiclient.EndpointSearchQuick, query, extra)
}

// Popular fetches the backend's trending queries.
func (e *Engine) Popular(ctx context.Context, limit int) ([]models.QueryCount, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out []models.QueryCount
	if _, err := e.api.Get(ctx, apiclient.EndpointSearchPopular, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches backend-side search aggregates.
func (e *Engine) Stats(ctx context.Context) (*models.SearchAnalytics, error) {
	var out models.SearchAnalytics
	if _, err := e.api.Get(ctx, apiclient.EndpointSearchStats, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggestions fetches completion candidates for a prefix. It fails open: on
// any error the pane simply shows nothing.
func (e *Engine) Suggestions(ctx context.Context, prefix string) []string {
	if isBlank(prefix) {
		return nil
	}
	var out []string
	if _, err := e.api.Get(ctx, apiclient.EndpointSearchSuggest, url.Values{"q": {prefix}}, &out); err != nil {
		e.logg.Warn(e.logg.WithQuery(ctx, prefix), "search suggestions unavailable: "+err.Error())
		return nil
	}
	return out
}

func (e *Engine) scoped(ctx context.Context, scope, path, query string, extra url.Values) ([]models.SearchResult, error) {
	if result := ValidateQuery(query); !result.IsValid {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, result.Errors[0]).
			WithDetails(result.Errors)
	}

	values := url.Values{"q": {query}}
	for key, vals := range extra {
		for _, v := range vals {
			values.Add(key, v)
		}
	}

	e.metrics.IncDispatched(scope)
	var hits []models.SearchResult
	if _, err := e.api.Get(ctx, path, values, &hits); err != nil {
		return nil, err
	}
	return Arrange(hits), nil
}
