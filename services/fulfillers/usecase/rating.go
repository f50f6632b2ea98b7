package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

// errRatingConflict signals a lost optimistic-concurrency race on the
// rating snapshot; the retrier re-reads and recomputes.
var errRatingConflict = errors.New("rating snapshot changed concurrently")

// incrementalMean folds one new sample into a running average.
func incrementalMean(average float64, count int, sample float64) float64 {
	return (average*float64(count) + sample) / float64(count+1)
}

// RecordRating folds a new review rating into the fulfiller's snapshot
// without recomputing over history. Each breakdown dimension keeps its own
// sample count, so a review that skips a dimension leaves that dimension's
// average untouched.
func (uc *FulfillerUC) RecordRating(ctx context.Context, fulfillerID uuid.UUID, rating float64, breakdown map[string]float64) error {
	if rating < 1 || rating > 5 {
		return errs.Validation("rating must be between 1 and 5")
	}
	for dimension, value := range breakdown {
		if value < 1 || value > 5 {
			return errs.Validation(fmt.Sprintf("rating for %s must be between 1 and 5", dimension))
		}
	}

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		current, err := uc.repo.GetRating(ctx, fulfillerID)
		if err != nil {
			return err
		}
		if current == nil {
			return errs.NotFound("fulfiller not found")
		}

		next := models.Rating{
			Average:      incrementalMean(current.Average, current.TotalRatings, rating),
			TotalRatings: current.TotalRatings + 1,
			Breakdown:    models.RatingBreakdown{},
		}
		for dimension, dim := range current.Breakdown {
			next.Breakdown[dimension] = dim
		}
		for dimension, value := range breakdown {
			dim := next.Breakdown[dimension]
			next.Breakdown[dimension] = models.DimensionRating{
				Average: incrementalMean(dim.Average, dim.Count, value),
				Count:   dim.Count + 1,
			}
		}

		ok, err := uc.repo.UpdateRatingIf(ctx, fulfillerID, current.TotalRatings, next)
		if err != nil {
			return err
		}
		if !ok {
			return errRatingConflict
		}
		return nil
	})
	if err != nil {
		if errs.KindOf(err) != "" {
			return err
		}
		return errs.Unavailable("failed to record rating", err)
	}

	logger.Info("Rating recorded",
		logger.String("fulfiller_id", fulfillerID.String()),
		logger.Float64("rating", rating))
	return nil
}
