package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kebba/gomove/services/bookings BookingUC

// PriceInput is the price an admin fixes at assignment time.
type PriceInput struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// BookingUC is the booking use case interface: creation, the lifecycle
// state machine, assignment, payment confirmation and reviews.
type BookingUC interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)

	// assignment: binds a pending booking to one approved, unreserved
	// fulfiller and fixes the price
	AssignFulfiller(ctx context.Context, bookingID, fulfillerID uuid.UUID, price PriceInput, actor models.Actor) (*models.Booking, error)

	// trip progress: one step forward through the state machine, by the
	// bound fulfiller only
	AdvanceTripStatus(ctx context.Context, bookingID uuid.UUID, actor models.Actor, target models.BookingStatus) (*models.Booking, error)

	// cancellation, governed by the per-status role table
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actor models.Actor, reason string) (*models.Booking, error)

	// price mutation after assignment, admin class only
	UpdatePrice(ctx context.Context, bookingID uuid.UUID, price PriceInput, actor models.Actor) (*models.Booking, error)

	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, actor models.Actor) (*models.Booking, error)
	SubmitReview(ctx context.Context, review *models.Review, actor models.Actor) error
}
