package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quickpost/quickpost-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Login authenticates a user and returns an access/refresh token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.TokenPair
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

// Refresh exchanges the refresh token carried in the Authorization header
// for a new token pair. The presented token is single-use: its slot is
// rotated and a replay of it revokes every session of the user.
//
// @Summary      Rotate a refresh token
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  true  "Bearer <refreshToken>"
// @Success      200  {object}  domain.TokenPair
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth/refreshToken [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing refresh token")
	}

	pair, err := h.authService.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pair)
}

// Logout removes one refresh token from the caller's session set. Requires
// a valid access token; the refresh token to drop travels in the body.
//
// @Summary      Logout one session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logoutRequest  true  "Refresh token to revoke"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing refresh token")
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// bearerToken returns the token portion of the Authorization header: the
// part after the first space, whatever the scheme. Empty when absent.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
