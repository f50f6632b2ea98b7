package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/middleware"
	"github.com/kebba/gomove/internal/pkg/models"
	httpHandler "github.com/kebba/gomove/services/fulfillers/handler/http"
)

// RegisterRoutes mounts the fulfiller endpoints on the echo instance.
func RegisterRoutes(e *echo.Echo, cfg *models.Config, h *httpHandler.FulfillerHandler) {
	g := e.Group("/fulfillers", middleware.JWTAuthMiddleware(cfg.JWT))

	// anyone authenticated may apply to become a fulfiller
	g.POST("/register", h.Register)

	// fulfiller self-service
	g.POST("/me/availability", h.SetAvailability, middleware.RequireRoles(models.RoleDriver))

	// admin tooling
	g.GET("/available", h.ListAvailable, middleware.RequireRoles(models.RoleAdmin))
	g.GET("/:id", h.GetFulfiller, middleware.RequireRoles(models.RoleAdmin))
	g.POST("/:id/approval", h.SetApproval, middleware.RequireRoles(models.RoleAdmin))
}
