package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgauth "github.com/simka-id/simka-backend/pkg/auth"
	"github.com/simka-id/simka-backend/pkg/auth/session"
	"github.com/simka-id/simka-backend/pkg/config"
	"github.com/simka-id/simka-backend/pkg/db/models"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/logger"
	"github.com/simka-id/simka-backend/pkg/security"
)

// Service handles credential verification and session lifecycle.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, accessID string) error
}

type userRepo interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type auditor interface {
	Record(ctx context.Context, userID uuid.UUID, action enums.AuditAction, description string)
}

type sessionManager interface {
	Start(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams wires the auth service dependencies.
type ServiceParams struct {
	Users    userRepo
	Audit    auditor
	Sessions sessionManager
	JWT      config.JWTConfig
	Logger   *logger.Logger
}

type service struct {
	users    userRepo
	audit    auditor
	sessions sessionManager
	jwt      config.JWTConfig
	logg     *logger.Logger
	now      func() time.Time
}

// NewService validates and wires the auth service.
func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "users repository required")
	}
	if params.Audit == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit service required")
	}
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "session manager required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{
		users:    params.Users,
		audit:    params.Audit,
		sessions: params.Sessions,
		jwt:      params.JWT,
		logg:     params.Logger,
		now:      time.Now,
	}, nil
}

// errInvalidCredentials is shared by every failure branch so responses
// never reveal whether the username exists.
func errInvalidCredentials() *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username or password")
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find user")
	}
	if !user.IsActive {
		return nil, errInvalidCredentials()
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, errInvalidCredentials()
	}

	now := s.now().UTC()
	accessID := session.NewAccessID()
	token, err := pkgauth.MintAccessToken(s.jwt, now, pkgauth.AccessTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Branch:   user.Branch,
		JTI:      accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	if err := s.sessions.Start(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "start session")
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logg.Error(s.logg.WithUserID(ctx, user.ID.String()), "update last login failed", err)
	}
	lastLogin := now
	user.LastLoginAt = &lastLogin

	s.audit.Record(ctx, user.ID, enums.AuditActionLogin,
		fmt.Sprintf("User %s logged in", user.Username))

	return &LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.jwt.AccessTokenTTL().Seconds()),
		User:        summaryFromModel(user),
	}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if accessID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing session id")
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}
