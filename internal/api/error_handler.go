package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// validationErrors render as 422 with the sentinel's own message, never the
// wrapping context added by the service layer.
var validationErrors = []error{
	domain.ErrEmptyTitle,
	domain.ErrEmptyName,
	domain.ErrInvalidEventType,
	domain.ErrInvalidDate,
	domain.ErrInvalidRole,
	domain.ErrInvalidNavigation,
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return http.StatusUnprocessableEntity, sentinel.Error()
		}
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "event not found"
	case errors.Is(err, domain.ErrSelfRoleChange):
		return http.StatusForbidden, domain.ErrSelfRoleChange.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrRequestInFlight):
		return http.StatusConflict, domain.ErrRequestInFlight.Error()
	case errors.Is(err, domain.ErrInvalidPassphrase):
		return http.StatusUnauthorized, "invalid household passphrase"
	case errors.Is(err, domain.ErrSuggestionUnavailable):
		return http.StatusServiceUnavailable, domain.ErrSuggestionUnavailable.Error()
	}

	// Unexpected error, persistence failures included: log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
