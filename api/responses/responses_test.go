package responses

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/types"
)

func TestWriteSuccessWrapsDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]string{"hello": "world"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data, ok := envelope.Data.(map[string]any)
	if !ok || data["hello"] != "world" {
		t.Fatalf("unexpected payload: %v", envelope.Data)
	}
}

func TestWriteErrorMapsCodeToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{pkgerrors.New(pkgerrors.CodeNotFound, "user not found"), http.StatusNotFound, "NOT_FOUND"},
		{pkgerrors.New(pkgerrors.CodeForbidden, "admin required"), http.StatusForbidden, "FORBIDDEN"},
		{pkgerrors.New(pkgerrors.CodeConflict, "username already exists"), http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("raw failure"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(context.Background(), nil, rec, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var envelope types.ErrorEnvelope
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if envelope.Error.Code != tc.code {
			t.Fatalf("expected code %s, got %s", tc.code, envelope.Error.Code)
		}
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.Wrap(pkgerrors.CodeInternal, fmt.Errorf("dsn=postgres://secret"), "store failure"))

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Message != "internal server error" {
		t.Fatalf("internal message leaked: %q", envelope.Error.Message)
	}
	if envelope.Error.Details != nil {
		t.Fatalf("internal details leaked: %v", envelope.Error.Details)
	}
}
