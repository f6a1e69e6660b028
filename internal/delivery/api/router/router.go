// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userapi/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthPath is the liveness probe route.
const HealthPath = "/health"

type RouterParams struct {
	fx.In

	UserHandler   *handler.UserHandler
	HealthHandler *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler   *handler.UserHandler
	healthHandler *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:   params.UserHandler,
		healthHandler: params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, r.healthHandler.HealthCheck)

	usersGroup := e.Group(handler.UsersPath)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.ReplaceUser)
		usersGroup.PATCH("/:id", r.userHandler.PatchUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
