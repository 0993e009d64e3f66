package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propchase/rental-api/internal/core/service"
)

func issueToken(t *testing.T, secret, subjectID, email string) string {
	t.Helper()
	token, err := service.NewTokenService(secret, time.Hour).Issue(subjectID, email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestAuthWithCookie(t *testing.T) {
	e := echo.New()
	token := issueToken(t, "secret", "user_1", "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(service.NewTokenService("secret", time.Hour))(func(c echo.Context) error {
		called = true
		subject, ok := Subject(c)
		if !ok || subject.ID != "user_1" {
			t.Fatalf("subject not injected: %+v", subject)
		}
		if subject.Email != "alice@example.com" {
			t.Fatalf("email not injected: %q", subject.Email)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthWithBearerHeader(t *testing.T) {
	e := echo.New()
	token := issueToken(t, "secret", "user_2", "bob@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(service.NewTokenService("secret", time.Hour))(func(c echo.Context) error {
		subject, _ := Subject(c)
		if subject.ID != "user_2" {
			t.Fatalf("unexpected subject %q", subject.ID)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(service.NewTokenService("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "missing token" {
		t.Fatalf("expected missing-token message, got %v", he.Message)
	}
}

func TestAuthTamperedToken(t *testing.T) {
	e := echo.New()
	token := issueToken(t, "other-secret", "user_1", "alice@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(service.NewTokenService("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "invalid token" {
		t.Fatalf("expected invalid-token message, got %v", he.Message)
	}
}

func TestOptionalAuthAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuth(service.NewTokenService("secret", time.Hour))(func(c echo.Context) error {
		called = true
		if _, ok := Subject(c); ok {
			t.Fatalf("anonymous request must not carry a subject")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous request should pass through")
	}
}

func TestOptionalAuthRejectsForgery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "forged.token.value"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth(service.NewTokenService("secret", time.Hour))(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
