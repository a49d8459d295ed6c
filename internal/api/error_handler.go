package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickpost/quickpost-api/internal/core/domain"
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
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Credential and token
	// failures intentionally share terse bodies so callers cannot tell a
	// missing user from a wrong password or a revoked token from a forged one.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "wrong username or password"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusBadRequest, "invalid token"
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusBadRequest, "you can only modify your own resources"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "username or email already taken"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many failed attempts, try again later"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
