package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

// SubmitReview records the requester's single review of a completed booking
// and folds the scores into the fulfiller's aggregate rating. The review
// insert is the gate; the aggregate update after it is at-least-once, with
// a PartialFailure surfaced when it cannot be applied.
func (uc *BookingUC) SubmitReview(ctx context.Context, review *models.Review, actor models.Actor) error {
	if review.Rating < 1 || review.Rating > 5 {
		return errs.Validation("rating must be between 1 and 5")
	}
	for dimension, score := range review.Breakdown {
		if score < 1 || score > 5 {
			return errs.Validation(fmt.Sprintf("rating for %s must be between 1 and 5", dimension))
		}
	}

	booking, err := uc.repo.GetByID(ctx, review.BookingID)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return errs.NotFound("booking not found")
	}
	if booking.RequesterID != actor.ID {
		return errs.Unauthorized("only the requester may review the booking")
	}
	if booking.Status != models.BookingStatusCompleted {
		return errs.WrongBookingState(fmt.Sprintf("booking is %s, not completed", booking.Status))
	}
	if booking.FulfillerID == nil {
		return errs.WrongBookingState("booking has no fulfiller to review")
	}

	existing, err := uc.repo.GetReviewByBookingID(ctx, review.BookingID)
	if err != nil {
		return fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return errs.DuplicateReview("booking already reviewed")
	}

	review.ID = uuid.New()
	review.ReviewerID = actor.ID
	review.FulfillerID = *booking.FulfillerID
	review.CreatedAt = models.Now()

	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return err
	}

	if err := uc.fulfillerSvc.RecordRating(ctx, review.FulfillerID, review.Rating, review.Breakdown); err != nil {
		// The review row exists; only the aggregate is stale.
		return errs.PartialFailure("review recorded but rating aggregation failed", err)
	}

	if err := uc.gw.PublishReviewSubmitted(ctx, review); err != nil {
		logger.Warn("Failed to publish review submitted event",
			logger.String("booking_id", review.BookingID.String()),
			logger.Err(err))
	}

	return nil
}
