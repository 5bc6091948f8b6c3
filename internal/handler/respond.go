// Package handler wires HTTP requests to services: it binds and shapes
// DTOs, bounds request time against the database, and maps the apperr
// taxonomy onto status codes. No business rule lives here.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/job-board-api/internal/apperr"
)

// dbTimeout bounds every service call issued from a handler. The store
// has its own timeouts; this is the request-level ceiling.
const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the incoming request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// httpStatus maps a failure kind onto its status code. Unknown errors
// fall through to 500.
func httpStatus(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail renders a service failure. Internal failures are logged with
// their cause and answered with a generic message; everything else
// carries the service's own message.
func fail(c echo.Context, err error) error {
	status := httpStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		msg = "internal server error"
	}
	return c.JSON(status, echo.Map{"error": msg})
}
