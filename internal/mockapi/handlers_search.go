package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
)

func unifiedSearch(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, repo.Search(q))
	}
}

func searchProjectResults(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, repo.SearchScoped(q, enums.ResultTypeProject, enums.ResultTypeMyProject))
	}
}

func searchUserResults(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, repo.SearchScoped(q, enums.ResultTypeUser))
	}
}

func searchStatusResults(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, repo.SearchScoped(q, enums.ResultTypeStatus))
	}
}

func searchByCategory(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		category, err := enums.ParseProjectCategory(chi.URLParam(r, "category"))
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}
		writeData(w, repo.SearchByCategory(q, category))
	}
}

func searchForUser(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		userID, err := pathUUID(r, "userId")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, repo.SearchForUser(q, userID))
	}
}

func quickSearch(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := requireQuery(r)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		writeData(w, repo.Quick(q, limit))
	}
}

func popularSearches(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		writeData(w, repo.Popular(limit))
	}
}

func searchStats(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.SearchStats())
	}
}

func suggestQueries(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.Suggest(r.URL.Query().Get("q")))
	}
}

func requireQuery(r *http.Request) (string, error) {
	q := r.URL.Query().Get("q")
	if q == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter q is required")
	}
	return q, nil
}
