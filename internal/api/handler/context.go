package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propchase/rental-api/internal/api/middleware"
	"github.com/propchase/rental-api/internal/core/ports"
)

// ctxSubject extracts the subject injected by the Auth middleware. Its
// absence on a protected route means the middleware did not run for this
// request, which is a wiring bug surfaced as 401 rather than a panic.
func ctxSubject(c echo.Context) (ports.Subject, error) {
	subject, ok := middleware.Subject(c)
	if !ok || subject.ID == "" {
		return ports.Subject{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}
