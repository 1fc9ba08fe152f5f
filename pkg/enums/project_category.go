package enums

import "fmt"

// ProjectCategory represents the workspace flavor a project is created as.
type ProjectCategory string

const (
	ProjectCategoryFeed     ProjectCategory = "feed"
	ProjectCategoryTask     ProjectCategory = "task"
	ProjectCategoryGantt    ProjectCategory = "gantt"
	ProjectCategoryCalendar ProjectCategory = "calendar"
	ProjectCategoryFile     ProjectCategory = "file"
)

var validProjectCategories = []ProjectCategory{
	ProjectCategoryFeed,
	ProjectCategoryTask,
	ProjectCategoryGantt,
	ProjectCategoryCalendar,
	ProjectCategoryFile,
}

// ProjectCategories returns the known categories in display order.
func ProjectCategories() []ProjectCategory {
	out := make([]ProjectCategory, len(validProjectCategories))
	copy(out, validProjectCategories)
	return out
}

// String implements fmt.Stringer.
func (c ProjectCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProjectCategory.
func (c ProjectCategory) IsValid() bool {
	for _, candidate := range validProjectCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProjectCategory converts raw input into a ProjectCategory.
func ParseProjectCategory(value string) (ProjectCategory, error) {
	for _, candidate := range validProjectCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid project category %q", value)
}
