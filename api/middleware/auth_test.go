package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgauth "github.com/simka-id/simka-backend/pkg/auth"
	"github.com/simka-id/simka-backend/pkg/auth/session"
	"github.com/simka-id/simka-backend/pkg/config"
	"github.com/simka-id/simka-backend/pkg/enums"
)

type stubSessionVerifier struct {
	ok  bool
	err error
}

func (s stubSessionVerifier) HasSession(context.Context, string) (bool, error) {
	return s.ok, s.err
}

func testAuthJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "simka", ExpirationMinutes: 60}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, role enums.UserRole, branch *string) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID:   uuid.New(),
		Username: "tester",
		Role:     role,
		Branch:   branch,
		JTI:      session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(testAuthJWTConfig(), stubSessionVerifier{ok: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(testAuthJWTConfig(), stubSessionVerifier{ok: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	cfg := testAuthJWTConfig()
	token := mintTestToken(t, cfg, enums.UserRoleCentralAdmin, nil)

	handler := Auth(cfg, stubSessionVerifier{ok: false}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthSeedsPrincipal(t *testing.T) {
	cfg := testAuthJWTConfig()
	branch := "riau"
	token := mintTestToken(t, cfg, enums.UserRoleBranchAdmin, &branch)

	var captured pkgauth.Principal
	var capturedAccessID string
	handler := Auth(cfg, stubSessionVerifier{ok: true}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = PrincipalFromContext(r.Context())
		capturedAccessID = AccessIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.UserID == uuid.Nil {
		t.Fatal("expected user id in context")
	}
	if captured.Role != enums.UserRoleBranchAdmin {
		t.Fatalf("expected branch admin role got %s", captured.Role)
	}
	if captured.BranchOrEmpty() != "riau" {
		t.Fatalf("expected riau branch got %q", captured.BranchOrEmpty())
	}
	if capturedAccessID == "" {
		t.Fatal("expected access id in context")
	}
}

func TestRequireRoleHonorsHierarchy(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name     string
		actual   enums.UserRole
		required enums.UserRole
		want     int
	}{
		{"member denied admin surface", enums.UserRoleMember, enums.UserRoleBranchAdmin, http.StatusForbidden},
		{"branch admin allowed", enums.UserRoleBranchAdmin, enums.UserRoleBranchAdmin, http.StatusOK},
		{"central admin outranks", enums.UserRoleCentralAdmin, enums.UserRoleBranchAdmin, http.StatusOK},
		{"branch admin denied central surface", enums.UserRoleBranchAdmin, enums.UserRoleCentralAdmin, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := RequireRole(tc.required, nil)(next)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			ctx := WithPrincipal(req.Context(), pkgauth.Principal{UserID: uuid.New(), Role: tc.actual})
			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, req.WithContext(ctx))
			if resp.Code != tc.want {
				t.Fatalf("expected %d got %d", tc.want, resp.Code)
			}
		})
	}
}

func TestRequireRoleRejectsAnonymous(t *testing.T) {
	handler := RequireRole(enums.UserRoleBranchAdmin, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
