package fulfillers

import (
	"context"

	"github.com/kebba/gomove/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/kebba/gomove/services/fulfillers FulfillerGW

// FulfillerGW publishes fulfiller events to the notification channel.
// Publishing is fire-and-forget: callers log failures and move on.
type FulfillerGW interface {
	PublishFulfillerApproved(ctx context.Context, fulfiller *models.Fulfiller) error
	PublishAvailabilityChanged(ctx context.Context, fulfiller *models.Fulfiller) error
}
