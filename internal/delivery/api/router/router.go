// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/dac-os/auth/internal/delivery/api/middleware"
	"github.com/dac-os/auth/internal/delivery/api/router/handler"
	"github.com/dac-os/auth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	ProfileHandler    *handler.ProfileHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	profileHandler    *handler.ProfileHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		profileHandler:    params.ProfileHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	canChangeUser := r.sessionMiddleware.RequirePermission(entity.PermissionChangeUser)
	canChangeProfile := r.sessionMiddleware.RequirePermission(entity.PermissionChangeProfile)

	// Every route below sees the session account when the token header names a live session
	api := e.Group("", r.sessionMiddleware.Resolve)

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.accountHandler.Create, canChangeUser)
		usersGroup.GET("", r.accountHandler.List)
		usersGroup.GET("/me", r.accountHandler.GetMe, r.sessionMiddleware.RequireSession)
		usersGroup.PUT("/me", r.accountHandler.UpdateMe, canChangeUser)
		usersGroup.POST("/me/session", r.accountHandler.Login)
		usersGroup.GET("/:registry", r.accountHandler.Get)
	}

	profilesGroup := api.Group("/profiles")
	{
		profilesGroup.POST("", r.profileHandler.Create, canChangeProfile)
		profilesGroup.GET("", r.profileHandler.List)
		profilesGroup.GET("/:profile", r.profileHandler.Get)
		profilesGroup.PUT("/:profile", r.profileHandler.Update, canChangeProfile)
		profilesGroup.DELETE("/:profile", r.profileHandler.Delete, canChangeProfile)
	}
}
