package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kebba/gomove/services/bookings BookingRepo

// BookingRepo is the booking persistence interface. Every status write is a
// conditional update keyed on the expected current status, so concurrent
// transition requests serialize and the loser observes a miss.
type BookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)

	// AssignIf binds the fulfiller, fixes the price and moves the booking
	// to driver_assigned, only while the booking is still pending.
	AssignIf(ctx context.Context, id, fulfillerID uuid.UUID, price models.Price, assignedAt time.Time) (bool, error)

	// UpdateStatusIf moves status from expected to next and stamps the
	// matching timestamp column exactly once.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next models.BookingStatus, stampedAt time.Time) (bool, error)

	// CancelIf is UpdateStatusIf for cancellation, additionally recording
	// who cancelled and why.
	CancelIf(ctx context.Context, id uuid.UUID, expected models.BookingStatus, cancelledBy, reason string, cancelledAt time.Time) (bool, error)

	UpdatePrice(ctx context.Context, id uuid.UUID, price models.Price) error

	// ConfirmPaymentIf marks the payment confirmed while the booking is
	// completed and the payment still pending.
	ConfirmPaymentIf(ctx context.Context, id uuid.UUID, confirmedAt time.Time) (bool, error)

	// CreateReview inserts the review; the unique constraint on booking_id
	// surfaces as a DuplicateReview error.
	CreateReview(ctx context.Context, review *models.Review) error
	GetReviewByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Review, error)
}
