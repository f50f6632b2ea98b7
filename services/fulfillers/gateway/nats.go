package gateway

import (
	"context"
	"time"

	"github.com/kebba/gomove/internal/pkg/constants"
	"github.com/kebba/gomove/internal/pkg/models"
	natspkg "github.com/kebba/gomove/internal/pkg/nats"
)

// FulfillerGW publishes fulfiller events over NATS.
type FulfillerGW struct {
	natsClient *natspkg.Client
}

// NewFulfillerGW creates a new fulfiller gateway
func NewFulfillerGW(natsClient *natspkg.Client) *FulfillerGW {
	return &FulfillerGW{natsClient: natsClient}
}

// FulfillerEvent is the payload published for fulfiller notifications.
type FulfillerEvent struct {
	FulfillerID  string    `json:"fulfiller_id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Approval     string    `json:"approval_status"`
	Availability string    `json:"availability"`
	Timestamp    time.Time `json:"timestamp"`
}

func eventFromFulfiller(f *models.Fulfiller) FulfillerEvent {
	return FulfillerEvent{
		FulfillerID:  f.ID.String(),
		UserID:       f.UserID.String(),
		Type:         string(f.Type),
		Approval:     string(f.ApprovalStatus),
		Availability: string(f.Availability),
		Timestamp:    models.Now(),
	}
}

// PublishFulfillerApproved publishes a fulfiller approval notification
func (g *FulfillerGW) PublishFulfillerApproved(ctx context.Context, fulfiller *models.Fulfiller) error {
	return g.natsClient.PublishJSON(constants.SubjectFulfillerApproved, eventFromFulfiller(fulfiller))
}

// PublishAvailabilityChanged publishes an availability change notification
func (g *FulfillerGW) PublishAvailabilityChanged(ctx context.Context, fulfiller *models.Fulfiller) error {
	return g.natsClient.PublishJSON(constants.SubjectFulfillerAvailability, eventFromFulfiller(fulfiller))
}
