package controllers

import (
	"net/http"

	"github.com/simka-id/simka-backend/api/middleware"
	"github.com/simka-id/simka-backend/api/responses"
	"github.com/simka-id/simka-backend/internal/stats"
	pkgerrors "github.com/simka-id/simka-backend/pkg/errors"
	"github.com/simka-id/simka-backend/pkg/logger"
)

// Dashboard returns the registry counters for the caller's scope.
func Dashboard(svc stats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		dash, err := svc.Dashboard(r.Context(), principal)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dash)
	}
}
