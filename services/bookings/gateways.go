package bookings

import (
	"context"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/kebba/gomove/services/bookings BookingGW

// BookingGW publishes booking events to the notification channel.
// Publishing is fire-and-forget: a failed publish never fails or rolls back
// the transition that triggered it.
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
	PublishBookingAssigned(ctx context.Context, booking *models.Booking) error
	PublishBookingStatusChanged(ctx context.Context, booking *models.Booking) error
	PublishBookingCancelled(ctx context.Context, booking *models.Booking) error
	PublishBookingCompleted(ctx context.Context, booking *models.Booking) error
	PublishReviewSubmitted(ctx context.Context, review *models.Review) error
}
