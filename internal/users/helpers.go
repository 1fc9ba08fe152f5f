package users

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
	"github.com/go-playground/validator/v10"
)

const (
	minUsernameLen      = 3
	maxUsernameLen      = 50
	maxDisplayNameLen   = 100
	maxStatusMessageLen = 255
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// ValidateUserInput applies the user validation contract and returns a
// structured result; it never panics or returns an error value.
func ValidateUserInput(input models.UserInput) types.ValidationResult {
	var errs []string

	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, "username is required")
	} else if len([]rune(input.Username)) < minUsernameLen {
		errs = append(errs, "username must be at least 3 characters")
	} else if len([]rune(input.Username)) > maxUsernameLen {
		errs = append(errs, "username must be at most 50 characters")
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, "email is required")
	} else if err := validate.Var(input.Email, "email"); err != nil {
		errs = append(errs, "email must be a valid address")
	}

	if strings.TrimSpace(input.DisplayName) == "" {
		errs = append(errs, "display name is required")
	} else if len([]rune(input.DisplayName)) > maxDisplayNameLen {
		errs = append(errs, "display name must be at most 100 characters")
	}

	if len([]rune(input.StatusMessage)) > maxStatusMessageLen {
		errs = append(errs, "status message must be at most 255 characters")
	}

	if input.Role != "" && !input.Role.IsValid() {
		errs = append(errs, "role is not a known value")
	}

	if len(errs) > 0 {
		return types.Invalid(errs)
	}
	return types.Valid()
}

// DefaultUserInput builds the blank user the registration form starts from.
func DefaultUserInput() models.UserInput {
	return models.UserInput{
		ProfileIcon: "😊",
		Role:        enums.UserRoleUser,
		IsActive:    true,
	}
}

// ProfileIcons returns the selectable presence icons in display order.
func ProfileIcons() []models.ProfileIcon {
	return []models.ProfileIcon{
		{Icon: "😊", Label: "default"},
		{Icon: "🚶", Label: "away"},
		{Icon: "💼", Label: "off-site"},
		{Icon: "🏖️", Label: "vacation"},
		{Icon: "📅", Label: "day off"},
		{Icon: "💻", Label: "working"},
		{Icon: "👥", Label: "in a meeting"},
		{Icon: "☕", Label: "break"},
		{Icon: "🚀", Label: "project"},
		{Icon: "🔥", Label: "on fire"},
		{Icon: "🎯", Label: "focused"},
		{Icon: "⚡", Label: "energized"},
	}
}

// Filters narrows a user list client-side.
type Filters struct {
	Role        enums.UserRole
	IsActive    *bool
	Search      string
	HasProjects *bool
	DateFrom    *time.Time
	DateTo      *time.Time
}

// Filter applies the filters against an in-memory user list.
func Filter(userList []models.User, filters Filters) []models.User {
	out := make([]models.User, 0, len(userList))
	needle := strings.ToLower(filters.Search)
	for _, u := range userList {
		if filters.Role != "" && u.Role != filters.Role {
			continue
		}
		if filters.IsActive != nil && u.IsActive != *filters.IsActive {
			continue
		}
		if needle != "" && !matchesSearch(u, needle) {
			continue
		}
		if filters.HasProjects != nil && (u.ProjectCount > 0) != *filters.HasProjects {
			continue
		}
		if filters.DateFrom != nil && u.CreatedAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && u.CreatedAt.After(*filters.DateTo) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matchesSearch(u models.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.Username), needle) ||
		strings.Contains(strings.ToLower(u.DisplayName), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle) ||
		strings.Contains(strings.ToLower(u.StatusMessage), needle)
}

// Sort orders a copy of the user list by the named field.
func Sort(userList []models.User, sortBy string, ascending bool) []models.User {
	out := make([]models.User, len(userList))
	copy(out, userList)
	sort.SliceStable(out, func(i, j int) bool {
		less := lessUsers(out[i], out[j], sortBy)
		if ascending {
			return less
		}
		return lessUsers(out[j], out[i], sortBy)
	})
	return out
}

func lessUsers(a, b models.User, sortBy string) bool {
	switch sortBy {
	case "username":
		return strings.ToLower(a.Username) < strings.ToLower(b.Username)
	case "displayName":
		return strings.ToLower(a.DisplayName) < strings.ToLower(b.DisplayName)
	case "email":
		return strings.ToLower(a.Email) < strings.ToLower(b.Email)
	case "projectCount":
		return a.ProjectCount < b.ProjectCount
	case "updatedAt":
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

// permissionRoles maps a named permission to the roles allowed to use it.
var permissionRoles = map[string][]enums.UserRole{
	"admin":           {enums.UserRoleAdmin},
	"manage_projects": {enums.UserRoleAdmin, enums.UserRoleManager},
	"create_projects": {enums.UserRoleAdmin, enums.UserRoleManager, enums.UserRoleUser},
	"view_stats":      {enums.UserRoleAdmin, enums.UserRoleManager},
	"manage_users":    {enums.UserRoleAdmin},
}

// HasPermission reports whether the user's role grants the named permission.
func HasPermission(user *models.User, permission string) bool {
	if user == nil {
		return false
	}
	allowed, ok := permissionRoles[permission]
	if !ok {
		return false
	}
	for _, role := range allowed {
		if user.Role == role {
			return true
		}
	}
	return false
}

// IsRecentlyActive reports whether the user is active and was updated within
// the trailing 30 days.
func IsRecentlyActive(user *models.User, now time.Time) bool {
	if user == nil || !user.IsActive {
		return false
	}
	return user.UpdatedAt.After(now.AddDate(0, 0, -30))
}
