package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/models"
)

// CreateReview inserts the review. The unique index on booking_id makes a
// second review for the same booking fail with a duplicate error.
func (r *BookingRepo) CreateReview(ctx context.Context, review *models.Review) error {
	breakdown, err := json.Marshal(review.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal review breakdown: %w", err)
	}

	query := `
		INSERT INTO reviews (
			id, booking_id, reviewer_id, fulfiller_id,
			rating, breakdown, comment, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.BookingID,
		review.ReviewerID,
		review.FulfillerID,
		review.Rating,
		breakdown,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errs.DuplicateReview("booking already reviewed")
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// GetReviewByBookingID returns the review for a booking, or nil when none exists.
func (r *BookingRepo) GetReviewByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Review, error) {
	query := `
		SELECT id, booking_id, reviewer_id, fulfiller_id, rating, breakdown, comment, created_at
		FROM reviews
		WHERE booking_id = $1
	`

	var review models.Review
	var breakdown []byte
	var comment sql.NullString

	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&review.ID,
		&review.BookingID,
		&review.ReviewerID,
		&review.FulfillerID,
		&review.Rating,
		&breakdown,
		&comment,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &review.Breakdown); err != nil {
			return nil, fmt.Errorf("invalid review breakdown: %w", err)
		}
	}
	review.Comment = comment.String

	return &review, nil
}
