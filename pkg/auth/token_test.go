package auth

import (
	"testing"
	"time"

	"github.com/drenteria/catalog-backend/pkg/config"
	"github.com/google/uuid"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "catalog-backend"}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: userID, IsAdmin: true})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: %s", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected admin claim")
	}

	expiry := claims.ExpiresAt.Time
	want := now.Add(AccessTokenTTL)
	if d := expiry.Sub(want); d > time.Second || d < -time.Second {
		t.Fatalf("expiry not one hour from issuance: got %s want %s", expiry, want)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().UTC().Add(-2 * AccessTokenTTL)

	token, err := MintAccessToken(cfg, issued, AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(testJWTConfig(), time.Now().UTC(), AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	other := config.JWTConfig{Secret: "rotated", Issuer: "catalog-backend"}
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := ParseAccessToken(testJWTConfig(), "not.a.jwt"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
