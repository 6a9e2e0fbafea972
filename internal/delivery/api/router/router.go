// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nativoseo/internal/delivery/api/middleware"
	"nativoseo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	AccountHandler  *handler.AccountHandler
	LocationHandler *handler.LocationHandler
	ReviewHandler   *handler.ReviewHandler
	PostHandler     *handler.PostHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	accountHandler  *handler.AccountHandler
	locationHandler *handler.LocationHandler
	reviewHandler   *handler.ReviewHandler
	postHandler     *handler.PostHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		accountHandler:  params.AccountHandler,
		locationHandler: params.LocationHandler,
		reviewHandler:   params.ReviewHandler,
		postHandler:     params.PostHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.GET("/me", r.authHandler.Me, authenticated)

		authGroup.GET("/login-test", r.authHandler.LoginTest)
		authGroup.GET("/login", r.authHandler.Login, authenticated)
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.GET("/callback-test", r.authHandler.CallbackTest)
	}

	// Everything below acts on the caller's own Google data.
	api := e.Group("", authenticated)
	{
		api.GET("/save-token", r.authHandler.SaveToken)

		api.GET("/test-accounts", r.accountHandler.LiveAccounts)
		api.GET("/test-locations/:accountId", r.accountHandler.LiveLocations)
		api.GET("/accounts/", r.accountHandler.CachedAccounts)
		api.GET("/accounts/:accountId/locations", r.accountHandler.CachedLocations)

		api.GET("/locations/active", r.locationHandler.ListActive)
		api.POST("/locations/active", r.locationHandler.Activate)
		api.DELETE("/locations/active/:locationId", r.locationHandler.Deactivate)

		api.GET("/test-reviews", r.reviewHandler.List)
		api.POST("/test-reviews/reply", r.reviewHandler.Reply)

		api.GET("/active-posts", r.postHandler.ListActive)
		api.POST("/active-posts/create", r.postHandler.Create)
		api.POST("/active-posts/create-extended", r.postHandler.CreateExtended)

		api.POST("/upload-image", r.mediaHandler.UploadImage)
	}
}
