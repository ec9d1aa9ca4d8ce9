// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/artifec12/event-tracker/internal/auth"
	"github.com/artifec12/event-tracker/internal/handler"
	"github.com/artifec12/event-tracker/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication beyond
// what the handler itself enforces.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth mounts the auth endpoints. Register and login live under
// /v1/auth behind the rate limiter; /v1/me requires a valid session token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limiter)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterEvents mounts the event endpoints.
//
// The share route is deliberately outside the authenticated group: the
// token in the path is the only access factor, and responses are cached
// when Redis is available. Creation and bulk sharing additionally require
// the admin role; update and delete authorize against ownership inside the
// handler, after the resource is resolved.
func RegisterEvents(e *echo.Echo, h *handler.EventHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/v1/events/share/:token", h.GetSharedEvent, cache)

	g := e.Group("/v1/events", middleware.JWTAuth(jwtSecret))
	g.POST("", h.CreateEvent, middleware.RequireRole(auth.RoleAdmin))
	g.GET("", h.ListEvents)
	g.PUT("/:id", h.UpdateEvent)
	g.PATCH("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
	g.POST("/bulk-share", h.BulkShare, middleware.RequireRole(auth.RoleAdmin))
}
