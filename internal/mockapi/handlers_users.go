package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flowpms/flowpms-go/pkg/auth"
	"github.com/flowpms/flowpms-go/pkg/config"
	"github.com/flowpms/flowpms-go/pkg/enums"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func initDefaultUser(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.DefaultUser())
	}
}

func listUsers(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.Users())
	}
}

func getUser(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		user, err := repo.UserByID(id)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, user)
	}
}

func getUserByUsername(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := repo.UserByUsername(chi.URLParam(r, "username"))
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, user)
	}
}

func createUser(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.UserInput
		if err := decodeBody(r, &input); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		user, err := repo.CreateUser(input)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, user)
	}
}

func updateUser(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		var input models.UserInput
		if err := decodeBody(r, &input); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		user, err := repo.UpdateUser(id, input)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, user)
	}
}

func updateUserStatus(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		var input models.StatusInput
		if err := decodeBody(r, &input); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		user, err := repo.UpdateUserStatus(id, input)
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeData(w, user)
	}
}

func deactivateUser(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "id")
		if err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		if err := repo.DeactivateUser(id); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		writeMessage(w, "user deactivated")
	}
}

func searchUsers(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.SearchUsers(r.URL.Query().Get("keyword")))
	}
}

func usersByRole(repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, err := enums.ParseUserRole(chi.URLParam(r, "role"))
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error()))
			return
		}
		writeData(w, repo.UsersByRole(role))
	}
}

func usersWithStatus(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.UsersWithStatus())
	}
}

func usersRecentlyActive(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		writeData(w, repo.UsersRecentlyActive(days))
	}
}

func usersWithProjects(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.UsersWithProjects())
	}
}

func userStats(repo *Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, repo.UserStats())
	}
}

// authLogin resolves the identifier as a username or email and responds
// with the user plus a freshly minted bearer token.
func authLogin(cfg config.MockConfig, repo *Repo, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Identifier string `json:"identifier"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(r.Context(), logg, w, err)
			return
		}
		if body.Identifier == "" {
			writeError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "identifier is required"))
			return
		}

		user, err := findByIdentifier(repo, body.Identifier)
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "unknown user"))
			return
		}

		token, err := auth.MintToken(cfg, time.Now(), user.ID, user.Username, user.Role)
		if err != nil {
			writeError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token failed"))
			return
		}
		writeDataToken(w, user, token)
	}
}

func findByIdentifier(repo *Repo, identifier string) (models.User, error) {
	if user, err := repo.UserByUsername(identifier); err == nil {
		return user, nil
	}
	for _, user := range repo.Users() {
		if user.Email == identifier {
			return user, nil
		}
	}
	return models.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id")
	}
	return id, nil
}
