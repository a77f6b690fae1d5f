package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post-related handlers
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePost handles creating a post. The user_id query parameter, when
// present, overrides the owner_id in the body.
func (h *PostHandler) CreatePost(c echo.Context) error {
	ownerID, err := parseOptionalUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CreatePostInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.postUC.Create(c.Request().Context(), &req, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// ListPosts handles listing posts, newest first, with skip/limit pagination
func (h *PostHandler) ListPosts(c echo.Context) error {
	skip, err := parseIntQuery(c, "skip", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := parseIntQuery(c, "limit", usecase.DefaultListLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	posts, err := h.postUC.List(c.Request().Context(), skip, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "Posts retrieved successfully")
}

// GetPost handles retrieving a single post
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.postUC.Get(c.Request().Context(), postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post retrieved successfully")
}

// ListUserPosts handles listing all posts owned by a user
func (h *PostHandler) ListUserPosts(c echo.Context) error {
	ownerID, err := parseUintParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	posts, err := h.postUC.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "User posts retrieved successfully")
}

// UpdatePost handles a partial update. The user_id query parameter, when
// present, must match the post's owner.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requesterID, err := parseOptionalUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdatePostInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	post, err := h.postUC.Update(c.Request().Context(), postID, &req, requesterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// DeletePost handles deleting a post with the same ownership check as update
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requesterID, err := parseOptionalUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.postUC.Delete(c.Request().Context(), postID, requesterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "Post deleted successfully")
}
