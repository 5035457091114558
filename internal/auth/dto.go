package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the account shape returned after login. It never
// carries credentials.
type UserSummary struct {
	ID          uuid.UUID      `json:"id"`
	Username    string         `json:"username"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Role        enums.UserRole `json:"role"`
	Branch      *string        `json:"branch,omitempty"`
	LastLoginAt *time.Time     `json:"last_login_at,omitempty"`
}

// LoginResponse contains the access token and the authenticated user.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *UserSummary `json:"user"`
}

func summaryFromModel(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Branch:      u.Branch,
		LastLoginAt: u.LastLoginAt,
	}
}
