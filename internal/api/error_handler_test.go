package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{"invalid credential", domain.ErrInvalidCredential, http.StatusUnauthorized},
		{"expired credential", domain.ErrExpiredCredential, http.StatusUnauthorized},
		{"bad login pair", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"role gate", &domain.ForbiddenError{Gate: domain.GateRole, Actual: domain.RoleSupport}, http.StatusForbidden},
		{"ownership gate", &domain.ForbiddenError{Gate: domain.GateOwnership, Actual: domain.RoleSales}, http.StatusForbidden},
		{"field gate", &domain.FieldNotAllowedError{Field: "owner_id", Role: domain.RoleSales}, http.StatusForbidden},
		{"not found", &domain.NotFoundError{Entity: domain.KindClient, ID: 42}, http.StatusNotFound},
		{"conflict", &domain.ConflictError{Field: "email", Value: "a@b.c"}, http.StatusConflict},
		{"validation", &domain.ValidationError{Reason: "contract 3 is not signed"}, http.StatusUnprocessableEntity},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.code, code)
		}
	}
}

func TestErrorHandler_InternalErrorsAreOpaque(t *testing.T) {
	_, msg := render(t, errors.New("dial tcp 10.0.0.1:27017: i/o timeout"))
	if msg != "internal server error" {
		t.Fatalf("internal cause leaked: %q", msg)
	}
}

func TestErrorHandler_AuthDetailHidden(t *testing.T) {
	// Expired vs invalid must be indistinguishable to the client.
	_, expired := render(t, domain.ErrExpiredCredential)
	_, invalid := render(t, domain.ErrInvalidCredential)
	if expired != invalid {
		t.Fatalf("expected identical messages, got %q vs %q", expired, invalid)
	}
}
