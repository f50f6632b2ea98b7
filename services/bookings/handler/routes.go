package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/middleware"
	"github.com/kebba/gomove/internal/pkg/models"
	httpHandler "github.com/kebba/gomove/services/bookings/handler/http"
)

// RegisterRoutes mounts the booking endpoints on the echo instance.
func RegisterRoutes(e *echo.Echo, cfg *models.Config, h *httpHandler.BookingHandler) {
	g := e.Group("/bookings", middleware.JWTAuthMiddleware(cfg.JWT))

	// requester operations
	g.POST("", h.CreateBooking, middleware.RequireRoles(models.RoleUser, models.RoleAdmin))
	g.GET("/:id", h.GetBooking)
	g.POST("/:id/cancel", h.CancelBooking)
	g.POST("/:id/payment/confirm", h.ConfirmPayment, middleware.RequireRoles(models.RoleUser, models.RoleAdmin))
	g.POST("/:id/review", h.SubmitReview, middleware.RequireRoles(models.RoleUser))

	// fulfiller operations
	g.POST("/:id/status", h.UpdateStatus, middleware.RequireRoles(models.RoleDriver, models.RoleAdmin))

	// admin operations
	g.GET("", h.ListBookings, middleware.RequireRoles(models.RoleAdmin))
	g.POST("/:id/assign", h.AssignFulfiller, middleware.RequireRoles(models.RoleAdmin))
	g.PUT("/:id/price", h.UpdatePrice, middleware.RequireRoles(models.RoleAdmin))
}
