package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/models"
)

// GetRating reads the current rating snapshot of a fulfiller.
func (r *FulfillerRepo) GetRating(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	query := `
		SELECT rating_average, rating_total, rating_breakdown
		FROM fulfillers
		WHERE id = $1
	`

	var rating models.Rating
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rating.Average,
		&rating.TotalRatings,
		&rating.Breakdown,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return &rating, nil
}

// UpdateRatingIf writes the rating snapshot with total_ratings acting as an
// optimistic-concurrency token: a concurrent writer bumps the total and this
// write misses, signalling the caller to recompute and retry.
func (r *FulfillerRepo) UpdateRatingIf(ctx context.Context, id uuid.UUID, expectedTotal int, rating models.Rating) (bool, error) {
	query := `
		UPDATE fulfillers
		SET rating_average = $1, rating_total = $2, rating_breakdown = $3, updated_at = $4
		WHERE id = $5 AND rating_total = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		rating.Average,
		rating.TotalRatings,
		rating.Breakdown,
		models.Now(),
		id,
		expectedTotal,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update rating: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}
