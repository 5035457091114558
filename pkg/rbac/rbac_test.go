package rbac

import (
	"testing"

	"github.com/simka-id/simka-backend/pkg/enums"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name     string
		actual   enums.UserRole
		required enums.UserRole
		want     bool
	}{
		{"member meets member", enums.UserRoleMember, enums.UserRoleMember, true},
		{"branch admin meets member", enums.UserRoleBranchAdmin, enums.UserRoleMember, true},
		{"central admin meets member", enums.UserRoleCentralAdmin, enums.UserRoleMember, true},
		{"member below branch admin", enums.UserRoleMember, enums.UserRoleBranchAdmin, false},
		{"branch admin meets branch admin", enums.UserRoleBranchAdmin, enums.UserRoleBranchAdmin, true},
		{"branch admin below central admin", enums.UserRoleBranchAdmin, enums.UserRoleCentralAdmin, false},
		{"central admin meets central admin", enums.UserRoleCentralAdmin, enums.UserRoleCentralAdmin, true},
		{"unknown role never qualifies", enums.UserRole("SUPER"), enums.UserRoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPermission(tt.actual, tt.required); got != tt.want {
				t.Fatalf("HasPermission(%s, %s) = %v, want %v", tt.actual, tt.required, got, tt.want)
			}
		})
	}
}

func TestCanAccessBranch(t *testing.T) {
	tests := []struct {
		name            string
		role            enums.UserRole
		principalBranch string
		targetBranch    string
		want            bool
	}{
		{"central admin any branch", enums.UserRoleCentralAdmin, "", "jakarta", true},
		{"central admin mismatched branches", enums.UserRoleCentralAdmin, "riau", "jakarta", true},
		{"branch admin own branch", enums.UserRoleBranchAdmin, "riau", "riau", true},
		{"branch admin other branch", enums.UserRoleBranchAdmin, "riau", "jakarta", false},
		{"branch admin empty principal branch", enums.UserRoleBranchAdmin, "", "", false},
		{"member never", enums.UserRoleMember, "riau", "riau", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessBranch(tt.role, tt.principalBranch, tt.targetBranch); got != tt.want {
				t.Fatalf("CanAccessBranch(%s, %q, %q) = %v, want %v",
					tt.role, tt.principalBranch, tt.targetBranch, got, tt.want)
			}
		})
	}
}
