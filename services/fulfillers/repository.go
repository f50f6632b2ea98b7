package fulfillers

import (
	"context"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kebba/gomove/services/fulfillers FulfillerRepo

// FulfillerRepo is the fulfiller persistence interface. Reservation and
// approval writes are conditional updates so concurrent callers cannot both
// succeed.
type FulfillerRepo interface {
	Create(ctx context.Context, fulfiller *models.Fulfiller) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fulfiller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Fulfiller, error)
	ListByApproval(ctx context.Context, fulfillerType models.FulfillerType, status models.ApprovalStatus) ([]*models.Fulfiller, error)

	// UpdateApprovalIf moves approval_status from expected to next; returns
	// false when the row was not in the expected state.
	UpdateApprovalIf(ctx context.Context, id uuid.UUID, expected, next models.ApprovalStatus) (bool, error)

	// ReserveIfFree atomically binds the booking and flips availability to
	// busy, only when no booking is currently bound; returns false when the
	// fulfiller was already reserved.
	ReserveIfFree(ctx context.Context, id, bookingID uuid.UUID) (bool, error)

	// ReleaseBooking clears the bound booking and restores availability to
	// available. Idempotent: releasing an unbound fulfiller is a no-op.
	ReleaseBooking(ctx context.Context, id uuid.UUID) error

	// UpdateAvailability writes the desired state only when no booking is
	// bound; returns false when a reservation holds the fulfiller.
	UpdateAvailability(ctx context.Context, id uuid.UUID, desired models.Availability) (bool, error)

	GetRating(ctx context.Context, id uuid.UUID) (*models.Rating, error)

	// UpdateRatingIf writes the new rating snapshot only when total_ratings
	// still equals expectedTotal; returns false on a lost race.
	UpdateRatingIf(ctx context.Context, id uuid.UUID, expectedTotal int, rating models.Rating) (bool, error)
}
