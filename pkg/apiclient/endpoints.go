package apiclient

import "fmt"

// Endpoint paths, relative to the configured API base URL. Kept in one place
// so the services and the mock server agree on the contract.

// Auth
const (
	EndpointAuthLogin = "/users/auth"
	EndpointUsersInit = "/users/init"
)

// Users
const (
	EndpointUsers             = "/users"
	EndpointUsersSearch       = "/users/search"
	EndpointUsersStats        = "/users/stats"
	EndpointUsersWithProjects = "/users/with-projects"
	EndpointUsersWithStatus   = "/users/with-status"
	EndpointUsersRecent       = "/users/recent"
)

func UserPath(id string) string { return fmt.Sprintf("/users/%s", id) }
func UserStatusPath(id string) string { return fmt.Sprintf("/users/%s/status", id) }
func UserByUsernamePath(u string) string { return fmt.Sprintf("/users/username/%s", u) }
func UsersByRolePath(role string) string { return fmt.Sprintf("/users/role/%s", role) }

// Projects
const (
	EndpointProjects       = "/projects"
	EndpointProjectsPublic = "/projects/public"
	EndpointProjectsSearch = "/projects/search"
	EndpointProjectsRecent = "/projects/recent"
	EndpointProjectsStats  = "/projects/stats"
)

func ProjectPath(id string) string { return fmt.Sprintf("/projects/%s", id) }
func ProjectStatusPath(id string) string { return fmt.Sprintf("/projects/%s/status", id) }
func ProjectsByUserPath(userID string) string { return fmt.Sprintf("/projects/user/%s", userID) }
func ProjectsByCategoryPath(cat string) string { return fmt.Sprintf("/projects/category/%s", cat) }
func ProjectsByStatusPath(status string) string { return fmt.Sprintf("/projects/status/%s", status) }

// Search
const (
	EndpointSearch         = "/search"
	EndpointSearchProjects = "/search/projects"
	EndpointSearchUsers    = "/search/users"
	EndpointSearchStatus   = "/search/status"
	EndpointSearchPopular  = "/search/popular"
	EndpointSearchStats    = "/search/stats"
	EndpointSearchSuggest  = "/search/suggest"
	EndpointSearchQuick    = "/search/quick"
)

func SearchByCategoryPath(cat string) string { return fmt.Sprintf("/search/category/%s", cat) }
func SearchForUserPath(userID string) string { return fmt.Sprintf("/search/user/%s", userID) }
