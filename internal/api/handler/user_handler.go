package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickpost/quickpost-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user-record operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// Get handles GET /user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /user/:id. Users can only update their own record;
// username is immutable and not accepted here.
//
// @Summary      Update own user record
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), actorID, ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /user/:id. Users can only delete their own record.
//
// @Summary      Delete own user record
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
