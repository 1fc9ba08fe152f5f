// Package mockapi serves a seeded, in-memory rendition of the Flow PMS
// backend so the client can be developed and tested without the real
// service. Every endpoint speaks the shared response envelope.
package mockapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/flowpms/flowpms-go/pkg/config"
	"github.com/flowpms/flowpms-go/pkg/logger"
)

// NewRouter wires the mock API's routes, middleware, and metrics endpoint.
func NewRouter(cfg config.MockConfig, logg *logger.Logger, repo *Repo, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(
		recoverer(logg),
		requestID(logg),
		logging(logg),
		corsPolicy(),
		bearerContext(cfg, logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", func(w http.ResponseWriter, _ *http.Request) {
			writeData(w, map[string]string{"status": "live"})
		})
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/auth", authLogin(cfg, repo, logg))
			r.Post("/init", initDefaultUser(repo))
			r.Get("/", listUsers(repo))
			r.Post("/", createUser(repo, logg))
			r.Get("/search", searchUsers(repo))
			r.Get("/stats", userStats(repo))
			r.Get("/with-projects", usersWithProjects(repo))
			r.Get("/with-status", usersWithStatus(repo))
			r.Get("/recent", usersRecentlyActive(repo))
			r.Get("/username/{username}", getUserByUsername(repo, logg))
			r.Get("/role/{role}", usersByRole(repo, logg))
			r.Get("/{id}", getUser(repo, logg))
			r.Put("/{id}", updateUser(repo, logg))
			r.Patch("/{id}/status", updateUserStatus(repo, logg))
			r.Delete("/{id}", deactivateUser(repo, logg))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", listProjects(repo))
			r.Post("/", createProject(repo, logg))
			r.Get("/public", listPublicProjects(repo))
			r.Get("/search", searchProjects(repo))
			r.Get("/recent", recentProjects(repo))
			r.Get("/stats", projectStats(repo))
			r.Get("/user/{userId}", listUserProjects(repo, logg))
			r.Get("/category/{category}", projectsByCategory(repo, logg))
			r.Get("/status/{status}", projectsByStatus(repo, logg))
			r.Get("/{id}", getProject(repo, logg))
			r.Put("/{id}", updateProject(repo, logg))
			r.Patch("/{id}/status", changeProjectStatus(repo, logg))
			r.Delete("/{id}", deleteProject(repo, logg))
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", unifiedSearch(repo, logg))
			r.Get("/projects", searchProjectResults(repo, logg))
			r.Get("/users", searchUserResults(repo, logg))
			r.Get("/status", searchStatusResults(repo, logg))
			r.Get("/quick", quickSearch(repo, logg))
			r.Get("/popular", popularSearches(repo))
			r.Get("/stats", searchStats(repo))
			r.Get("/suggest", suggestQueries(repo))
			r.Get("/category/{category}", searchByCategory(repo, logg))
			r.Get("/user/{userId}", searchForUser(repo, logg))
		})
	})

	return r
}
