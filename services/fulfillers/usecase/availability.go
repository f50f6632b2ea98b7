package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

// SetAvailability applies the offline/available toggle for the fulfiller
// owned by actorUserID. The busy state is owned by the reservation engine
// and cannot be set here, which keeps the reservation invariant
// (bound booking ⇔ busy) intact.
func (uc *FulfillerUC) SetAvailability(ctx context.Context, actorUserID uuid.UUID, desired models.Availability) (*models.Fulfiller, error) {
	if desired != models.AvailabilityOffline && desired != models.AvailabilityAvailable {
		return nil, errs.Validation("availability must be offline or available")
	}

	fulfiller, err := uc.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	if !fulfiller.Approved() {
		return nil, errs.FulfillerNotApproved("fulfiller is not approved")
	}

	if fulfiller.CurrentBookingID != nil {
		return nil, errs.BlockedByActiveBooking("fulfiller has an active booking")
	}

	updated, err := uc.repo.UpdateAvailability(ctx, fulfiller.ID, desired)
	if err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	if !updated {
		// A reservation landed between the read above and the write.
		return nil, errs.BlockedByActiveBooking("fulfiller has an active booking")
	}
	fulfiller.Availability = desired

	if err := uc.gw.PublishAvailabilityChanged(ctx, fulfiller); err != nil {
		logger.Warn("Failed to publish availability change",
			logger.String("fulfiller_id", fulfiller.ID.String()),
			logger.Err(err))
	}

	return fulfiller, nil
}

// Reserve atomically binds a booking to an approved, unreserved fulfiller.
func (uc *FulfillerUC) Reserve(ctx context.Context, fulfillerID, bookingID uuid.UUID) error {
	fulfiller, err := uc.GetByID(ctx, fulfillerID)
	if err != nil {
		return err
	}

	if !fulfiller.Approved() {
		return errs.FulfillerNotApproved("fulfiller is not approved")
	}

	reserved, err := uc.repo.ReserveIfFree(ctx, fulfillerID, bookingID)
	if err != nil {
		return errs.Unavailable("failed to reserve fulfiller", err)
	}
	if !reserved {
		return errs.FulfillerBusy("fulfiller already has a booking")
	}

	logger.Info("Fulfiller reserved",
		logger.String("fulfiller_id", fulfillerID.String()),
		logger.String("booking_id", bookingID.String()))
	return nil
}

// Release clears the fulfiller's bound booking and marks it available.
// Idempotent: releasing an already-unbound fulfiller is a no-op, so callers
// may retry freely after a partial failure.
func (uc *FulfillerUC) Release(ctx context.Context, fulfillerID uuid.UUID) error {
	if err := uc.repo.ReleaseBooking(ctx, fulfillerID); err != nil {
		return fmt.Errorf("failed to release fulfiller: %w", err)
	}

	logger.Info("Fulfiller released",
		logger.String("fulfiller_id", fulfillerID.String()))
	return nil
}
