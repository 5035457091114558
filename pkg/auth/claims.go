package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/simka-id/simka-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID   uuid.UUID
	Username string
	Role     enums.UserRole
	Branch   *string
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to clients. Role and
// branch ride in the token so every request carries its full principal.
type AccessTokenClaims struct {
	UserID   uuid.UUID      `json:"user_id"`
	Username string         `json:"username"`
	Role     enums.UserRole `json:"role"`
	Branch   *string        `json:"branch,omitempty"`
	jwt.RegisteredClaims
}
