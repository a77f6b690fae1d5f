package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/http/response"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BrowsingHistoryHandlerParams holds dependencies for BrowsingHistoryHandler, injected by Fx.
type BrowsingHistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.BrowsingHistoryUsecase
	Logger    *slog.Logger
}

// BrowsingHistoryHandler holds dependencies for history-related handlers
type BrowsingHistoryHandler struct {
	historyUC usecase.BrowsingHistoryUsecase
	logger    *slog.Logger
}

// NewBrowsingHistoryHandler is the constructor for BrowsingHistoryHandler
func NewBrowsingHistoryHandler(params BrowsingHistoryHandlerParams) *BrowsingHistoryHandler {
	return &BrowsingHistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// RecordView handles recording that a user viewed a post
func (h *BrowsingHistoryHandler) RecordView(c echo.Context) error {
	userID, err := parseRequiredUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	postID, err := parseRequiredUintQuery(c, "post_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.historyUC.Record(c.Request().Context(), userID, postID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record, "View recorded successfully")
}

// ListUserHistory handles listing the posts a user viewed, most recent first
func (h *BrowsingHistoryHandler) ListUserHistory(c echo.Context) error {
	userID, err := parseUintParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	posts, err := h.historyUC.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts, "Browsing history retrieved successfully")
}

// ClearHistory handles removing all of a user's history
func (h *BrowsingHistoryHandler) ClearHistory(c echo.Context) error {
	userID, err := parseRequiredUintQuery(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cleared, err := h.historyUC.Clear(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cleared, "Browsing history cleared successfully")
}
