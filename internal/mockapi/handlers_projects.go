package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func listProjects(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.Projects())
	}
}

func listPublicProjects(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.PublicProjects())
	}
}

func getProject(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		project, err := repo.ProjectByID(id)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, project)
	}
}

func listUserProjects(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathUUID(r, "userId")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, repo.ProjectsByUser(userID))
	}
}

func createProject(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := queryUUID(r, "ownerId")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		var input models.ProjectInput
		if err := decodeBody(r, &input); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		project, err := repo.CreateProject(input, ownerID)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, project)
	}
}

func updateProject(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		userID, err := queryUUID(r, "userId")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		var input models.ProjectInput
		if err := decodeBody(r, &input); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		project, err := repo.UpdateProject(id, input, userID)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, project)
	}
}

func deleteProject(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		userID, err := queryUUID(r, "userId")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		if err := repo.DeleteProject(id, userID); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeMessage(w, "project deleted")
	}
}

func searchProjects(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.SearchProjects(r.URL.Query().Get("keyword")))
	}
}

func projectsByCategory(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := enums.ParseProjectCategory(chi.URLParam(r, "category"))
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}
		writeData(w, repo.ProjectsByCategory(category))
	}
}

func projectsByStatus(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := enums.ParseProjectStatus(chi.URLParam(r, "status"))
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}
		writeData(w, repo.ProjectsByStatus(status))
	}
}

func recentProjects(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		writeData(w, repo.RecentProjects(days))
	}
}

func changeProjectStatus(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		userID, err := queryUUID(r, "userId")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseProjectStatus(r.URL.Query().Get("status"))
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}
		project, err := repo.ChangeProjectStatus(id, status, userID)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, project)
	}
}

func projectStats(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.ProjectStats())
	}
}

func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" is required")
	}
	return id, nil
}
