package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/models"
)

// ConfirmPayment flags the payment of a completed booking as settled.
// Only the requester (or an admin) confirms, and only once.
func (uc *BookingUC) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, actor models.Actor) (*models.Booking, error) {
	booking, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, errs.NotFound("booking not found")
	}

	if !actor.IsAdmin() && booking.RequesterID != actor.ID {
		return nil, errs.Unauthorized("only the requester may confirm payment")
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, errs.WrongBookingState(fmt.Sprintf("booking is %s, not completed", booking.Status))
	}
	if booking.Payment.Status == models.PaymentStatusConfirmed {
		return nil, errs.WrongBookingState("payment is already confirmed")
	}

	now := models.Now()
	confirmed, err := uc.repo.ConfirmPaymentIf(ctx, bookingID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	if !confirmed {
		return nil, errs.WrongBookingState("payment state changed concurrently")
	}

	booking.Payment.Status = models.PaymentStatusConfirmed
	booking.Payment.ConfirmedAt = &now

	return booking, nil
}
