package controllers

import (
	"net/http"

	"github.com/simka-id/simka-backend/api/responses"
	"github.com/simka-id/simka-backend/internal/branches"
)

// ListBranches returns the static branch directory.
func ListBranches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, branches.All())
	}
}
