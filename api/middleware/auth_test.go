package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/drenteria/catalog-backend/pkg/auth"
	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/google/uuid"
)

var testJWT = config.JWTConfig{Secret: "middleware-secret", Issuer: "catalog-backend"}

func mintToken(t *testing.T, issued time.Time, userID uuid.UUID, isAdmin bool) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(testJWT, issued, pkgAuth.AccessTokenPayload{UserID: userID, IsAdmin: isAdmin})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func authProtected(t *testing.T) (http.Handler, *http.Request) {
	t.Helper()
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-User", UserIDFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	return Auth(testJWT, nil)(handler), httptest.NewRequest("GET", "/protected", nil)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler, req := authProtected(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	handler, req := authProtected(t)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	handler, req := authProtected(t)
	token := mintToken(t, time.Now().UTC().Add(-2*pkgAuth.AccessTokenTTL), uuid.New(), false)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", rec.Code)
	}
}

func TestAuthSeedsContextClaims(t *testing.T) {
	handler, req := authProtected(t)
	userID := uuid.New()
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Now().UTC(), userID, false))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-User"); got != userID.String() {
		t.Fatalf("expected user id %s in context, got %q", userID, got)
	}
}

func TestAuthAcceptsBareTokenWithoutScheme(t *testing.T) {
	handler, req := authProtected(t)
	req.Header.Set("Authorization", mintToken(t, time.Now().UTC(), uuid.New(), false))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for bare token, got %d", rec.Code)
	}
}
