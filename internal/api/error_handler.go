package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

// errorResponse is the canonical envelope for non-form errors.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorResponse carries per-field form errors: at most one message per
// field, keyed by form field name.
type fieldErrorResponse struct {
	Errors domain.FieldErrors `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation and account errors as {"errors": {field: message}}.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Field-level validation errors block submission with a 400.
	var fe domain.FieldErrors
	if errors.As(err, &fe) {
		return http.StatusBadRequest, fieldErrorResponse{Errors: fe}
	}

	// Account errors surface as field errors with deterministic codes.
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, fieldErrorResponse{Errors: domain.FieldErrors{"email": "Email already registered"}}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, fieldErrorResponse{Errors: domain.FieldErrors{"email": "No account found with this email"}}
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, fieldErrorResponse{Errors: domain.FieldErrors{"password": "Invalid password"}}
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusBadGateway, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
