package fulfillers

import (
	"context"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kebba/gomove/services/fulfillers FulfillerUC

// FulfillerUC is the fulfiller use case interface: registration, the admin
// approval workflow, availability, reservation and rating aggregation.
type FulfillerUC interface {
	Register(ctx context.Context, fulfiller *models.Fulfiller) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Fulfiller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Fulfiller, error)

	// approval workflow (admin)
	SetApproval(ctx context.Context, id uuid.UUID, target models.ApprovalStatus) (*models.Fulfiller, error)

	// assignment support: approved fulfillers of a type, busy ones included
	ListAvailable(ctx context.Context, fulfillerType models.FulfillerType) ([]*models.Fulfiller, error)

	// availability: the one state change an approved idle fulfiller performs
	// unilaterally
	SetAvailability(ctx context.Context, actorUserID uuid.UUID, desired models.Availability) (*models.Fulfiller, error)

	// reservation engine
	Reserve(ctx context.Context, fulfillerID, bookingID uuid.UUID) error
	Release(ctx context.Context, fulfillerID uuid.UUID) error

	// rating aggregation
	RecordRating(ctx context.Context, fulfillerID uuid.UUID, rating float64, breakdown map[string]float64) error
}
