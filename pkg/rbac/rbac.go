// Package rbac holds the role hierarchy and the branch access evaluator.
// Both are pure functions; callers translate a false result into a
// Forbidden error.
package rbac

import "github.com/simka-id/simka-backend/pkg/enums"

var roleRanks = map[enums.UserRole]int{
	enums.UserRoleMember:       0,
	enums.UserRoleBranchAdmin:  1,
	enums.UserRoleCentralAdmin: 2,
}

// Rank returns the position of a role in the hierarchy. Unknown roles
// rank below MEMBER so they never satisfy a permission check.
func Rank(role enums.UserRole) int {
	if rank, ok := roleRanks[role]; ok {
		return rank
	}
	return -1
}

// HasPermission reports whether the actual role meets or exceeds the
// required role.
func HasPermission(actual, required enums.UserRole) bool {
	return Rank(actual) >= Rank(required)
}

// CanAccessBranch decides whether a principal may act on a record owned
// by targetBranch. CENTRAL_ADMIN has global scope; BRANCH_ADMIN is
// limited to an exact match on its own branch; everyone else is denied.
func CanAccessBranch(role enums.UserRole, principalBranch, targetBranch string) bool {
	if role == enums.UserRoleCentralAdmin {
		return true
	}
	if role == enums.UserRoleBranchAdmin && principalBranch != "" && principalBranch == targetBranch {
		return true
	}
	return false
}
