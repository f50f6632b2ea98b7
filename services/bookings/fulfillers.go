package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_fulfiller_svc.go -package=mocks github.com/kebba/gomove/services/bookings FulfillerSvc

// FulfillerSvc is the slice of the fulfiller service the booking lifecycle
// depends on: reservation, release and rating aggregation.
type FulfillerSvc interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fulfiller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Fulfiller, error)
	Reserve(ctx context.Context, fulfillerID, bookingID uuid.UUID) error
	Release(ctx context.Context, fulfillerID uuid.UUID) error
	RecordRating(ctx context.Context, fulfillerID uuid.UUID, rating float64, breakdown map[string]float64) error
}
