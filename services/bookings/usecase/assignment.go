package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/services/bookings"
)

// AssignFulfiller binds a pending booking to one approved, unreserved
// fulfiller and fixes the price. The fulfiller reservation is taken first;
// only a successful reservation proceeds to mutate the booking, so a busy
// fulfiller never leaves a half-assigned booking behind.
func (uc *BookingUC) AssignFulfiller(ctx context.Context, bookingID, fulfillerID uuid.UUID, price bookings.PriceInput, actor models.Actor) (*models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, errs.Unauthorized("only admins may assign fulfillers")
	}
	if price.Amount <= 0 {
		return nil, errs.Validation("price amount must be positive")
	}

	booking, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, errs.NotFound("booking not found")
	}
	if booking.Status != models.BookingStatusPending {
		return nil, errs.WrongBookingState(fmt.Sprintf("booking is %s, not pending", booking.Status))
	}

	fulfiller, err := uc.fulfillerSvc.GetByID(ctx, fulfillerID)
	if err != nil {
		return nil, err
	}
	if !fulfiller.Approved() {
		return nil, errs.FulfillerNotApproved("fulfiller is not approved")
	}

	if err := uc.fulfillerSvc.Reserve(ctx, fulfillerID, bookingID); err != nil {
		return nil, err
	}

	currency := price.Currency
	if currency == "" {
		currency = uc.cfg.Booking.DefaultCurrency
	}
	now := models.Now()
	fixedPrice := models.Price{
		Amount:   price.Amount,
		Currency: currency,
		SetBy:    actor.ID,
		SetAt:    now,
	}

	assigned, err := uc.repo.AssignIf(ctx, bookingID, fulfillerID, fixedPrice, now)
	if err != nil {
		uc.releaseReservation(ctx, fulfillerID, bookingID)
		return nil, fmt.Errorf("failed to assign booking: %w", err)
	}
	if !assigned {
		// A concurrent assign or cancel won the pending slot.
		uc.releaseReservation(ctx, fulfillerID, bookingID)
		return nil, errs.WrongBookingState("booking is no longer pending")
	}

	booking.Status = models.BookingStatusAssigned
	booking.FulfillerID = &fulfillerID
	booking.Price = &fixedPrice
	booking.AssignedAt = &now

	if err := uc.gw.PublishBookingAssigned(ctx, booking); err != nil {
		logger.Warn("Failed to publish booking assigned event",
			logger.String("booking_id", booking.ID.String()),
			logger.Err(err))
	}

	return booking, nil
}

// UpdatePrice overwrites the fixed price of an already-assigned,
// non-terminal booking. Admin class only.
func (uc *BookingUC) UpdatePrice(ctx context.Context, bookingID uuid.UUID, price bookings.PriceInput, actor models.Actor) (*models.Booking, error) {
	if !actor.IsAdmin() {
		return nil, errs.Unauthorized("only admins may change the price")
	}
	if price.Amount <= 0 {
		return nil, errs.Validation("price amount must be positive")
	}

	booking, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return nil, errs.NotFound("booking not found")
	}
	if booking.Price == nil {
		return nil, errs.WrongBookingState("booking has no price to change")
	}
	if booking.Status.IsTerminal() {
		return nil, errs.AlreadyTerminal(fmt.Sprintf("booking is already %s", booking.Status))
	}

	currency := price.Currency
	if currency == "" {
		currency = booking.Price.Currency
	}
	newPrice := models.Price{
		Amount:   price.Amount,
		Currency: currency,
		SetBy:    actor.ID,
		SetAt:    models.Now(),
	}

	if err := uc.repo.UpdatePrice(ctx, bookingID, newPrice); err != nil {
		return nil, fmt.Errorf("failed to update price: %w", err)
	}
	booking.Price = &newPrice

	return booking, nil
}

// releaseReservation undoes a fulfiller reservation after the booking write
// failed. A failed release leaves the fulfiller stuck busy, which is worth
// an error-level log rather than a silent warning.
func (uc *BookingUC) releaseReservation(ctx context.Context, fulfillerID, bookingID uuid.UUID) {
	if err := uc.releaseFulfiller(ctx, fulfillerID); err != nil {
		logger.Error("Failed to release fulfiller after assignment failure",
			logger.String("fulfiller_id", fulfillerID.String()),
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}
}
