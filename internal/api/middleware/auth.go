package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/propchase/rental-api/internal/api/metrics"
	"github.com/propchase/rental-api/internal/core/domain"
	"github.com/propchase/rental-api/internal/core/ports"
)

// TokenCookie is the cookie the web client keeps the session token in.
const TokenCookie = "token"

const subjectKey = "subject"

// ExtractToken pulls the session token from the token cookie or, failing
// that, from an Authorization bearer header. Empty string means anonymous.
func ExtractToken(c echo.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// Auth verifies the session token and injects the subject into the echo
// context. Requests without a token and requests with a bad token both
// fail with 401, but with distinct messages so clients can tell
// "not logged in" from "session no longer valid".
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, err := tokens.Verify(ExtractToken(c))
			if err != nil {
				if errors.Is(err, domain.ErrMissingToken) {
					metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(subjectKey, subject)
			return next(c)
		}
	}
}

// OptionalAuth injects the subject when a valid token is present and lets
// anonymous requests through untouched. A tampered token is still
// rejected: anonymous is a valid outcome, forgery is not.
func OptionalAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, err := tokens.Verify(ExtractToken(c))
			if err != nil {
				if errors.Is(err, domain.ErrMissingToken) {
					metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
					return next(c)
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(subjectKey, subject)
			return next(c)
		}
	}
}

// Subject returns the authenticated subject, if any.
func Subject(c echo.Context) (ports.Subject, bool) {
	subject, ok := c.Get(subjectKey).(ports.Subject)
	return subject, ok
}
