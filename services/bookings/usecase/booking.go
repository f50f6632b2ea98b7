package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

// CreateBooking validates and persists a new booking in pending status.
// The caller supplies requester, type and the type-specific details; the
// lifecycle fields are owned here.
func (uc *BookingUC) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.RequesterID == uuid.Nil {
		return errs.Validation("requester id is required")
	}

	switch booking.Type {
	case models.BookingTypeRide:
		if booking.Ride == nil {
			return errs.Validation("ride bookings require ride details")
		}
		if booking.Delivery != nil {
			return errs.Validation("ride bookings cannot carry delivery details")
		}
	case models.BookingTypeDelivery:
		if booking.Delivery == nil {
			return errs.Validation("delivery bookings require delivery details")
		}
		if booking.Ride != nil {
			return errs.Validation("delivery bookings cannot carry ride details")
		}
		if booking.Delivery.PickupAddress == "" || booking.Delivery.DropoffAddress == "" {
			return errs.Validation("delivery bookings require pickup and dropoff addresses")
		}
	default:
		return errs.Validation(fmt.Sprintf("invalid booking type: %s", booking.Type))
	}

	booking.ID = uuid.New()
	booking.Status = models.BookingStatusPending
	booking.RequestedAt = models.Now()
	booking.FulfillerID = nil
	booking.Price = nil
	if booking.Payment.Method == "" {
		booking.Payment.Method = "cash"
	}
	booking.Payment.Status = models.PaymentStatusPending
	booking.Payment.ConfirmedAt = nil

	if err := uc.repo.Create(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := uc.gw.PublishBookingCreated(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking created event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}

	return nil
}

// GetBooking returns the booking when the actor is its requester, the
// fulfiller bound to it, or an admin.
func (uc *BookingUC) GetBooking(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Booking, error) {
	booking, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, errs.NotFound("booking not found")
	}

	if actor.IsAdmin() || booking.RequesterID == actor.ID {
		return booking, nil
	}

	if actor.Role == models.RoleDriver && booking.FulfillerID != nil {
		fulfiller, err := uc.fulfillerSvc.GetByUserID(ctx, actor.ID)
		if err == nil && fulfiller != nil && *booking.FulfillerID == fulfiller.ID {
			return booking, nil
		}
	}

	return nil, errs.Unauthorized("not allowed to view this booking")
}

// ListBookings returns bookings matching the filter. Authorization is the
// handler's concern; the admin routes are the only callers of the
// unconstrained form.
func (uc *BookingUC) ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errs.Validation(fmt.Sprintf("invalid status filter: %s", filter.Status))
	}
	if filter.Type != "" && filter.Type != models.BookingTypeRide && filter.Type != models.BookingTypeDelivery {
		return nil, errs.Validation(fmt.Sprintf("invalid type filter: %s", filter.Type))
	}

	bookings, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
