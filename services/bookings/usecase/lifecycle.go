package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

// AdvanceTripStatus moves the booking one step forward through the state
// machine. Only the bound fulfiller (or an admin) may advance; the write is
// conditional on the status observed here, so of two concurrent advances
// exactly one commits.
func (uc *BookingUC) AdvanceTripStatus(ctx context.Context, bookingID uuid.UUID, actor models.Actor, target models.BookingStatus) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, errs.Validation(fmt.Sprintf("invalid status: %s", target))
	}
	if target == models.BookingStatusCancelled {
		return nil, errs.Validation("cancellation goes through the cancel operation")
	}
	if target == models.BookingStatusAssigned {
		// Assignment reserves a fulfiller and prices the booking; a plain
		// status write would skip both.
		return nil, errs.Validation("assignment goes through the assign operation")
	}

	booking, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, errs.NotFound("booking not found")
	}
	if booking.Status.IsTerminal() {
		return nil, errs.AlreadyTerminal(fmt.Sprintf("booking is already %s", booking.Status))
	}

	if err := uc.authorizeFulfillerAction(ctx, booking, actor); err != nil {
		return nil, err
	}

	if !models.CanTransition(booking.Status, target) {
		return nil, errs.InvalidTransition(fmt.Sprintf("cannot move from %s to %s", booking.Status, target))
	}

	now := models.Now()
	updated, err := uc.repo.UpdateStatusIf(ctx, bookingID, booking.Status, target, now)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !updated {
		return nil, errs.WrongBookingState("booking status changed concurrently")
	}

	previous := booking.Status
	booking.Status = target
	uc.stampStatus(booking, target, now)

	if target == models.BookingStatusCompleted {
		if booking.FulfillerID != nil {
			if err := uc.releaseFulfiller(ctx, *booking.FulfillerID); err != nil {
				// The booking is committed as completed; the fulfiller
				// stays reserved until release is retried.
				return booking, errs.PartialFailure("booking completed but fulfiller release failed", err)
			}
		}
		if err := uc.gw.PublishBookingCompleted(ctx, booking); err != nil {
			logger.Warn("Failed to publish booking completed event",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err))
		}
		return booking, nil
	}

	if err := uc.gw.PublishBookingStatusChanged(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking status change",
			logger.String("booking_id", booking.ID.String()),
			logger.String("from", string(previous)),
			logger.String("to", string(target)),
			logger.Err(err))
	}

	return booking, nil
}

// CancelBooking cancels a non-terminal booking. Who may cancel depends on
// the current status: requesters only early, the bound fulfiller up to
// pickup, admins at any non-terminal point.
func (uc *BookingUC) CancelBooking(ctx context.Context, bookingID uuid.UUID, actor models.Actor, reason string) (*models.Booking, error) {
	booking, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, errs.NotFound("booking not found")
	}
	if booking.Status.IsTerminal() {
		return nil, errs.AlreadyTerminal(fmt.Sprintf("booking is already %s", booking.Status))
	}

	if !models.CanCancel(booking.Status, actor.Role) {
		return nil, errs.Unauthorized(fmt.Sprintf("role %s may not cancel a %s booking", actor.Role, booking.Status))
	}

	switch actor.Role {
	case models.RoleUser:
		if booking.RequesterID != actor.ID {
			return nil, errs.Unauthorized("only the requester may cancel their booking")
		}
	case models.RoleDriver:
		if err := uc.authorizeFulfillerAction(ctx, booking, actor); err != nil {
			return nil, err
		}
	}

	now := models.Now()
	cancelled, err := uc.repo.CancelIf(ctx, bookingID, booking.Status, actor.Role, reason, now)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !cancelled {
		return nil, errs.WrongBookingState("booking status changed concurrently")
	}

	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancelledBy = actor.Role
	booking.CancelReason = reason

	// The fulfiller is freed no matter who cancelled.
	if booking.FulfillerID != nil {
		if err := uc.releaseFulfiller(ctx, *booking.FulfillerID); err != nil {
			return booking, errs.PartialFailure("booking cancelled but fulfiller release failed", err)
		}
	}

	if err := uc.gw.PublishBookingCancelled(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking cancelled event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}

	return booking, nil
}

// releaseFulfiller frees a reserved fulfiller, retrying transient failures
// before the caller surfaces a partial write.
func (uc *BookingUC) releaseFulfiller(ctx context.Context, fulfillerID uuid.UUID) error {
	return uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.fulfillerSvc.Release(ctx, fulfillerID)
	})
}

// authorizeFulfillerAction checks that a driver-role actor is the fulfiller
// bound to the booking. Admins pass unconditionally.
func (uc *BookingUC) authorizeFulfillerAction(ctx context.Context, booking *models.Booking, actor models.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role != models.RoleDriver {
		return errs.Unauthorized("only the assigned fulfiller may perform this action")
	}
	if booking.FulfillerID == nil {
		return errs.Unauthorized("booking has no assigned fulfiller")
	}

	fulfiller, err := uc.fulfillerSvc.GetByUserID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if fulfiller.ID != *booking.FulfillerID {
		return errs.Unauthorized("booking is assigned to another fulfiller")
	}
	return nil
}

func (uc *BookingUC) stampStatus(booking *models.Booking, status models.BookingStatus, at time.Time) {
	t := at
	switch status {
	case models.BookingStatusEnRoute:
		booking.EnRouteAt = &t
	case models.BookingStatusPickedUp:
		booking.PickedUpAt = &t
	case models.BookingStatusInTransit:
		booking.InTransitAt = &t
	case models.BookingStatusCompleted:
		booking.CompletedAt = &t
	}
}
