package middleware

import (
	"net/http"

	"github.com/drenteria/catalog-backend/api/responses"
	pkgerrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RequireAdmin allows only requests whose verified claims carry the admin
// role. Runs after Auth; an unauthenticated request never reaches this gate.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdminFromContext(r.Context()) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelfOrAdmin allows admins through unconditionally and other
// requesters only when the named URL parameter equals their own identity.
func RequireSelfOrAdmin(param string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if IsAdminFromContext(ctx) {
				next.ServeHTTP(w, r)
				return
			}
			target := chi.URLParam(r, param)
			if target == "" || target != UserIDFromContext(ctx) {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized for this resource"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
