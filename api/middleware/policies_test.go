package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func policyRouter(policy func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.With(policy).Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestRequireAdminBlocksNonAdmin(t *testing.T) {
	router := policyRouter(RequireAdmin(nil))
	req := httptest.NewRequest("GET", "/users/"+uuid.NewString(), nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.NewString(), false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	router := policyRouter(RequireAdmin(nil))
	req := httptest.NewRequest("GET", "/users/"+uuid.NewString(), nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.NewString(), true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireSelfOrAdminAllowsSelf(t *testing.T) {
	router := policyRouter(RequireSelfOrAdmin("id", nil))
	self := uuid.NewString()
	req := httptest.NewRequest("GET", "/users/"+self, nil)
	req = req.WithContext(WithIdentity(req.Context(), self, false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for self access, got %d", rec.Code)
	}
}

func TestRequireSelfOrAdminBlocksOtherUser(t *testing.T) {
	router := policyRouter(RequireSelfOrAdmin("id", nil))
	req := httptest.NewRequest("GET", "/users/"+uuid.NewString(), nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.NewString(), false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cross-user access, got %d", rec.Code)
	}
}

func TestRequireSelfOrAdminAllowsAdminOnAnyTarget(t *testing.T) {
	router := policyRouter(RequireSelfOrAdmin("id", nil))
	req := httptest.NewRequest("GET", "/users/"+uuid.NewString(), nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.NewString(), true))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin access, got %d", rec.Code)
	}
}
