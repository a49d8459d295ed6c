package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickpost/quickpost-api/internal/api/middleware"
)

// authedUser extracts the user id injected by the Auth middleware and
// fast-fails before any service call: an empty id means the middleware did
// not run on this route, which is a wiring bug surfaced as 401 rather than
// a panic further down.
func authedUser(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return id, nil
}
