package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavorite handles favoriting a post. A repeat call answers 200 with the
// existing favorite instead of 201.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, err := parseRequiredUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	postID, err := parseRequiredUintQuery(c, "post_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.Add(c.Request().Context(), userID, postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if favorite.Already {
		return response.Success(c, http.StatusOK, favorite, "Post already favorited")
	}

	return response.Success(c, http.StatusCreated, favorite, "Post favorited successfully")
}

// RemoveFavorite handles unfavoriting a post
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, err := parseRequiredUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	postID, err := parseRequiredUintQuery(c, "post_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.Remove(c.Request().Context(), userID, postID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Favorite removed"}, "Favorite removed successfully")
}

// ListUserFavorites handles listing a user's favorited posts
func (h *FavoriteHandler) ListUserFavorites(c echo.Context) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	posts, err := h.favoriteUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "User favorites retrieved successfully")
}

// CheckFavorite handles checking whether a user has favorited a post
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID, err := parseRequiredUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	postID, err := parseRequiredUintQuery(c, "post_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorited, err := h.favoriteUC.Check(c.Request().Context(), userID, postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_favorited": favorited}, "Favorite status retrieved successfully")
}
