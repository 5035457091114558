package auth

import (
	"github.com/google/uuid"

	"github.com/simka-id/simka-backend/pkg/enums"
)

// Principal is the authenticated actor attached to a request after the
// access token and session have been verified.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     enums.UserRole
	Branch   *string
}

// BranchOrEmpty returns the principal's branch code, or "" when the
// account is not tied to a branch.
func (p Principal) BranchOrEmpty() string {
	if p.Branch == nil {
		return ""
	}
	return *p.Branch
}
