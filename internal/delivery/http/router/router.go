// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PostHandler     *handler.PostHandler
	FavoriteHandler *handler.FavoriteHandler
	HistoryHandler  *handler.BrowsingHistoryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	postHandler     *handler.PostHandler
	favoriteHandler *handler.FavoriteHandler
	historyHandler  *handler.BrowsingHistoryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		postHandler:     params.PostHandler,
		favoriteHandler: params.FavoriteHandler,
		historyHandler:  params.HistoryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Post routes
	postGroup := e.Group("/posts")
	{
		postGroup.POST("/", r.postHandler.CreatePost)
		postGroup.GET("/", r.postHandler.ListPosts)
		postGroup.GET("/:id", r.postHandler.GetPost)
		postGroup.PUT("/:id", r.postHandler.UpdatePost)
		postGroup.DELETE("/:id", r.postHandler.DeletePost)
	}

	// Favorite routes keyed by user_id/post_id query parameters
	favoriteGroup := e.Group("/favorites")
	{
		favoriteGroup.POST("/", r.favoriteHandler.AddFavorite)
		favoriteGroup.DELETE("/", r.favoriteHandler.RemoveFavorite)
		favoriteGroup.GET("/check", r.favoriteHandler.CheckFavorite)
	}

	// Browsing history routes
	historyGroup := e.Group("/browsing-history")
	{
		historyGroup.POST("/", r.historyHandler.RecordView)
		historyGroup.DELETE("/", r.historyHandler.ClearHistory)
	}

	// Per-user collections
	userGroup := e.Group("/users")
	{
		userGroup.GET("/:id/posts", r.postHandler.ListUserPosts)
		userGroup.GET("/:id/favorites", r.favoriteHandler.ListUserFavorites)
		userGroup.GET("/:id/browsing-history", r.historyHandler.ListUserHistory)
	}
}
