package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/middleware"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/internal/utils"
	"github.com/kebba/gomove/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// CreateRequest is the payload for creating a booking.
type CreateRequest struct {
	Type          models.BookingType      `json:"type"`
	PaymentMethod string                  `json:"payment_method"`
	Ride          *models.RideDetails     `json:"ride,omitempty"`
	Delivery      *models.DeliveryDetails `json:"delivery,omitempty"`
}

// CreateBooking handles booking creation requests
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking := &models.Booking{
		RequesterID: actor.ID,
		Type:        req.Type,
		Ride:        req.Ride,
		Delivery:    req.Delivery,
		Payment:     models.Payment{Method: req.PaymentMethod},
	}

	if err := h.bookingUC.CreateBooking(c.Request().Context(), booking); err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to create booking", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create booking")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking handles booking retrieval requests
func (h *BookingHandler) GetBooking(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), id, actor)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// ListBookings handles the admin booking listing
func (h *BookingHandler) ListBookings(c echo.Context) error {
	filter := models.BookingFilter{
		Status: models.BookingStatus(c.QueryParam("status")),
		Type:   models.BookingType(c.QueryParam("type")),
	}

	if requester := c.QueryParam("requester_id"); requester != "" {
		id, err := uuid.Parse(requester)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid requester ID")
		}
		filter.RequesterID = &id
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid limit")
		}
		filter.Limit = n
	}
	if offset := c.QueryParam("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid offset")
		}
		filter.Offset = n
	}

	list, err := h.bookingUC.ListBookings(c.Request().Context(), filter)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.InternalServerErrorResponse(c, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", list)
}

// AssignRequest is the payload for the admin assignment operation.
type AssignRequest struct {
	FulfillerID uuid.UUID           `json:"fulfiller_id"`
	Price       bookings.PriceInput `json:"price"`
}

// AssignFulfiller handles admin assignment requests
func (h *BookingHandler) AssignFulfiller(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.FulfillerID == uuid.Nil {
		return utils.BadRequestResponse(c, "Fulfiller ID is required")
	}

	booking, err := h.bookingUC.AssignFulfiller(c.Request().Context(), bookingID, req.FulfillerID, req.Price, actor)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to assign fulfiller",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to assign fulfiller")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fulfiller assigned successfully", booking)
}

// StatusRequest is the payload for trip progress updates.
type StatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateStatus handles trip progress requests from the assigned fulfiller
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.AdvanceTripStatus(c.Request().Context(), bookingID, actor, req.Status)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to update booking status",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update booking status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated successfully", booking)
}

// CancelRequest is the payload for cancellation.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// CancelBooking handles cancellation requests
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID, actor, req.Reason)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to cancel booking",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to cancel booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", booking)
}

// PriceRequest is the payload for admin price changes.
type PriceRequest struct {
	Price bookings.PriceInput `json:"price"`
}

// UpdatePrice handles admin price change requests
func (h *BookingHandler) UpdatePrice(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req PriceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.UpdatePrice(c.Request().Context(), bookingID, req.Price, actor)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to update price",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update price")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Price updated successfully", booking)
}

// ConfirmPayment handles the requester's payment confirmation
func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.ConfirmPayment(c.Request().Context(), bookingID, actor)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to confirm payment",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to confirm payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed successfully", booking)
}

// ReviewRequest is the payload for submitting a review.
type ReviewRequest struct {
	Rating    float64            `json:"rating"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
	Comment   string             `json:"comment,omitempty"`
}

// SubmitReview handles review submission on a completed booking
func (h *BookingHandler) SubmitReview(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	review := &models.Review{
		BookingID: bookingID,
		Rating:    req.Rating,
		Breakdown: req.Breakdown,
		Comment:   req.Comment,
	}

	if err := h.bookingUC.SubmitReview(c.Request().Context(), review, actor); err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to submit review",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to submit review")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted successfully", review)
}
