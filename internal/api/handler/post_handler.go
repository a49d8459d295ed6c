package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickpost/quickpost-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// List handles GET /post.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Post
// @Router       /post [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /post/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /post/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create handles POST /post.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Router       /post [post]
func (h *PostHandler) Create(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Sender:  actorID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update handles PUT /post/:id. Only the post's sender may update it.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /post/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), actorID, ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /post/:id. Only the post's sender may delete it.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /post/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
