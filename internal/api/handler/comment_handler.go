package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickpost/quickpost-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListByPost handles GET /comment/post/:postId.
//
// @Summary      List comments for a post
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path     string  true  "Post id"
// @Success      200     {array}  domain.Comment
// @Router       /comment/post/{postId} [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.service.ListByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Get handles GET /comment/:id.
//
// @Summary      Get a comment by id
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  domain.Comment
// @Failure      404  {object}  map[string]string
// @Router       /comment/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Create handles POST /comment.
//
// @Summary      Create a comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment content"
// @Success      200   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /comment [post]
func (h *CommentHandler) Create(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		PostID:  req.PostID,
		Sender:  actorID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Update handles PUT /comment/:id. Only the comment's sender may update it.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "New content"
// @Success      200   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /comment/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Update(c.Request().Context(), c.Param("id"), actorID, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /comment/:id. Only the comment's sender may delete it.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comment/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	actorID, err := authedUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
