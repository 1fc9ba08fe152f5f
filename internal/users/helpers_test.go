package users

import (
	"strings"
	"testing"
	"time"

	"github.com/flowpms/flowpms-go/pkg/enums"
	"github.com/flowpms/flowpms-go/pkg/models"
)

func validUserInput() models.UserInput {
	return models.UserInput{
		Username:    "jordan",
		Email:       "jordan@flowpms.dev",
		DisplayName: "Jordan Lee",
		Role:        enums.UserRoleUser,
	}
}

func TestValidateUserInputUsernameBounds(t *testing.T) {
	input := validUserInput()
	input.Username = "ab"
	if result := ValidateUserInput(input); result.IsValid {
		t.Fatalf("2-character username must fail")
	}

	input.Username = strings.Repeat("u", 50)
	if result := ValidateUserInput(input); !result.IsValid {
		t.Fatalf("50-character username must pass, got %v", result.Errors)
	}

	input.Username = strings.Repeat("u", 51)
	if result := ValidateUserInput(input); result.IsValid {
		t.Fatalf("51-character username must fail")
	}
}

func TestValidateUserInputEmail(t *testing.T) {
	input := validUserInput()
	input.Email = ""
	if result := ValidateUserInput(input); result.IsValid {
		t.Fatalf("missing email must fail")
	}

	input.Email = "not-an-address"
	if result := ValidateUserInput(input); result.IsValid {
		t.Fatalf("malformed email must fail")
	}
}

func TestValidateUserInputStatusMessageBoundary(t *testing.T) {
	input := validUserInput()
	input.StatusMessage = strings.Repeat("s", 255)
	if result := ValidateUserInput(input); !result.IsValid {
		t.Fatalf("255-character status must pass, got %v", result.Errors)
	}

	input.StatusMessage = strings.Repeat("s", 256)
	if result := ValidateUserInput(input); result.IsValid {
		t.Fatalf("256-character status must fail")
	}
}

func TestValidateUserInputUnknownRole(t *testing.T) {
	input := validUserInput()
	input.Role = "OVERLORD"
	if result := ValidateUserInput(input); result.IsValid {
		t.Fatalf("unknown role must fail")
	}

	input.Role = ""
	if result := ValidateUserInput(input); !result.IsValid {
		t.Fatalf("empty role is allowed, got %v", result.Errors)
	}
}

func TestHasPermission(t *testing.T) {
	admin := &models.User{Role: enums.UserRoleAdmin}
	manager := &models.User{Role: enums.UserRoleManager}
	member := &models.User{Role: enums.UserRoleUser}

	cases := []struct {
		user       *models.User
		permission string
		want       bool
	}{
		{admin, "admin", true},
		{manager, "admin", false},
		{manager, "manage_projects", true},
		{member, "manage_projects", false},
		{member, "create_projects", true},
		{admin, "manage_users", true},
		{member, "unknown_permission", false},
		{nil, "admin", false},
	}
	for _, tc := range cases {
		if got := HasPermission(tc.user, tc.permission); got != tc.want {
			t.Fatalf("permission %q: expected %v but got %v", tc.permission, tc.want, got)
		}
	}
}

func TestIsRecentlyActive(t *testing.T) {
	now := time.Now()
	fresh := &models.User{IsActive: true, UpdatedAt: now.AddDate(0, 0, -5)}
	stale := &models.User{IsActive: true, UpdatedAt: now.AddDate(0, 0, -45)}
	inactive := &models.User{IsActive: false, UpdatedAt: now}

	if !IsRecentlyActive(fresh, now) {
		t.Fatalf("user updated 5 days ago is recently active")
	}
	if IsRecentlyActive(stale, now) {
		t.Fatalf("user updated 45 days ago is not recently active")
	}
	if IsRecentlyActive(inactive, now) {
		t.Fatalf("inactive users are never recently active")
	}
	if IsRecentlyActive(nil, now) {
		t.Fatalf("nil user is never recently active")
	}
}

func TestProfileIconsStable(t *testing.T) {
	icons := ProfileIcons()
	if len(icons) != 12 {
		t.Fatalf("expected 12 selectable icons, got %d", len(icons))
	}
	if icons[0].Label != "default" {
		t.Fatalf("first icon should be the default, got %q", icons[0].Label)
	}
}
