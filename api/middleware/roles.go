package middleware

import (
	"net/http"

	"github.com/simka-id/simka-backend/api/responses"
	"github.com/simka-id/simka-backend/pkg/enums"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/logger"
	"github.com/simka-id/simka-backend/pkg/rbac"
)

// RequireRole rejects requests whose principal ranks below the required
// role. A central admin passes every gate.
func RequireRole(required enums.UserRole, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}
			if !rbac.HasPermission(principal.Role, required) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
