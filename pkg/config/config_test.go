package config

import (
	"strings"
	"testing"
)

func TestEnsureDSNPrefersExplicitDSN(t *testing.T) {
	db := DBConfig{DSN: "postgres://app:secret@db:5432/catalog"}
	if err := db.ensureDSN(); err != nil {
		t.Fatalf("ensureDSN: %v", err)
	}
	if db.DSN != "postgres://app:secret@db:5432/catalog" {
		t.Fatalf("DSN rewritten: %s", db.DSN)
	}
}

func TestEnsureDSNFromLegacyVars(t *testing.T) {
	db := DBConfig{
		LegacyHost:     "localhost",
		LegacyPort:     5433,
		LegacyUser:     "catalog",
		LegacyPassword: "s3cret",
		LegacyName:     "catalogdb",
		LegacySSLMode:  "disable",
	}
	if err := db.ensureDSN(); err != nil {
		t.Fatalf("ensureDSN: %v", err)
	}
	for _, want := range []string{"postgres://", "catalog:s3cret@", "localhost:5433", "/catalogdb", "sslmode=disable"} {
		if !strings.Contains(db.DSN, want) {
			t.Fatalf("DSN %q missing %q", db.DSN, want)
		}
	}
}

func TestEnsureDSNReportsMissingLegacyVars(t *testing.T) {
	db := DBConfig{LegacyHost: "localhost"}
	err := db.ensureDSN()
	if err == nil {
		t.Fatalf("expected error for missing legacy vars")
	}
	if !strings.Contains(err.Error(), EnvDBUser) || !strings.Contains(err.Error(), EnvDBName) {
		t.Fatalf("error should name missing vars, got: %v", err)
	}
}
