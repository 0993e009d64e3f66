package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/propchase/rental-api/internal/core/domain"
)

func TestHTTPErrorHandlerDomainMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"duplicate email", domain.ErrDuplicateEmail, http.StatusConflict, domain.ErrDuplicateEmail.Error()},
		{"password confirmation", domain.ErrPasswordConfirmation, http.StatusBadRequest, domain.ErrPasswordConfirmation.Error()},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, domain.ErrMissingFields.Error()},
		{"password too short", domain.ErrPasswordTooShort, http.StatusBadRequest, domain.ErrPasswordTooShort.Error()},
		{"invalid stay dates", domain.ErrInvalidStayDates, http.StatusBadRequest, domain.ErrInvalidStayDates.Error()},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"missing token", domain.ErrMissingToken, http.StatusUnauthorized, "missing token"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusForbidden, domain.ErrPasswordMismatch.Error()},
		{"same password", domain.ErrSamePassword, http.StatusForbidden, domain.ErrSamePassword.Error()},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"property not found", domain.ErrPropertyNotFound, http.StatusNotFound, "property not found"},
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound, "booking not found"},
		{"reset throttled", domain.ErrResetThrottled, http.StatusTooManyRequests, domain.ErrResetThrottled.Error()},
		{"unexpected error", errors.New("mongo exploded"), http.StatusInternalServerError, "internal server error"},
	}

	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handle(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandlerEchoErrors(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid payload" {
		t.Fatalf("expected echo message passthrough, got %q", resp.Error)
	}
}

func TestHTTPErrorHandlerCommittedResponse(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, map[string]bool{"ok": true}); err != nil {
		t.Fatalf("write response: %v", err)
	}
	handle(domain.ErrForbidden, c)

	// Already-committed responses must not be overwritten.
	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
}
