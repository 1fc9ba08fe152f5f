package projects

import (
	"sort"
	"strings"
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
	"github.com/flowpms/flowpms-go/pkg/types"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

// ValidateProjectInput applies the project validation contract and returns a
// structured result; it never panics or returns an error value.
func ValidateProjectInput(input models.ProjectInput) types.ValidationResult {
	var errs []string

	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, "project title is required")
	} else if len([]rune(input.Title)) > maxTitleLen {
		errs = append(errs, "project title must be at most 255 characters")
	}

	if input.Category == "" {
		errs = append(errs, "project category is required")
	} else if !input.Category.IsValid() {
		errs = append(errs, "project category is not a known value")
	}

	if input.Status != "" && !input.Status.IsValid() {
		errs = append(errs, "project status is not a known value")
	}

	if len([]rune(input.Description)) > maxDescriptionLen {
		errs = append(errs, "project description must be at most 1000 characters")
	}

	if len(errs) > 0 {
		return types.Invalid(errs)
	}
	return types.Valid()
}

// DefaultProjectInput builds the project the create form starts from.
func DefaultProjectInput() models.ProjectInput {
	return models.ProjectInput{
		Category:       enums.ProjectCategoryFeed,
		Status:         enums.ProjectStatusInProgress,
		IsPublic:       true,
		HasAdminAccess: true,
	}
}

// Filters narrows a project list client-side.
type Filters struct {
	Category enums.ProjectCategory
	Status   enums.ProjectStatus
	IsPublic *bool
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time
}

// Filter applies the filters against an in-memory project list.
func Filter(projectList []models.Project, filters Filters) []models.Project {
	out := make([]models.Project, 0, len(projectList))
	needle := strings.ToLower(filters.Search)
	for _, p := range projectList {
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		if filters.IsPublic != nil && p.IsPublic != *filters.IsPublic {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if filters.DateFrom != nil && p.CreatedAt.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && p.CreatedAt.After(*filters.DateTo) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders a copy of the project list by the named field.
func Sort(projectList []models.Project, sortBy string, ascending bool) []models.Project {
	out := make([]models.Project, len(projectList))
	copy(out, projectList)
	sort.SliceStable(out, func(i, j int) bool {
		less := lessProjects(out[i], out[j], sortBy)
		if ascending {
			return less
		}
		return lessProjects(out[j], out[i], sortBy)
	})
	return out
}

func lessProjects(a, b models.Project, sortBy string) bool {
	switch sortBy {
	case "title":
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	case "category":
		return a.Category < b.Category
	case "status":
		return a.Status < b.Status
	case "updatedAt":
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}
