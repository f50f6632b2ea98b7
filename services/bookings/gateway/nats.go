package gateway

import (
	"context"
	"time"

	"github.com/kebba/gomove/internal/pkg/constants"
	"github.com/kebba/gomove/internal/pkg/models"
	natspkg "github.com/kebba/gomove/internal/pkg/nats"
)

// BookingGW publishes booking events over NATS.
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(natsClient *natspkg.Client) *BookingGW {
	return &BookingGW{natsClient: natsClient}
}

// BookingEvent is the payload published for booking notifications.
type BookingEvent struct {
	BookingID   string    `json:"booking_id"`
	RequesterID string    `json:"requester_id"`
	FulfillerID string    `json:"fulfiller_id,omitempty"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReviewEvent is the payload published when a review lands.
type ReviewEvent struct {
	BookingID   string    `json:"booking_id"`
	ReviewerID  string    `json:"reviewer_id"`
	FulfillerID string    `json:"fulfiller_id"`
	Rating      float64   `json:"rating"`
	Timestamp   time.Time `json:"timestamp"`
}

func eventFromBooking(b *models.Booking) BookingEvent {
	event := BookingEvent{
		BookingID:   b.ID.String(),
		RequesterID: b.RequesterID.String(),
		Type:        string(b.Type),
		Status:      string(b.Status),
		Timestamp:   models.Now(),
	}
	if b.FulfillerID != nil {
		event.FulfillerID = b.FulfillerID.String()
	}
	return event
}

// PublishBookingCreated publishes a booking creation notification
func (g *BookingGW) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingCreated, eventFromBooking(booking))
}

// PublishBookingAssigned publishes a booking assignment notification
func (g *BookingGW) PublishBookingAssigned(ctx context.Context, booking *models.Booking) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingAssigned, eventFromBooking(booking))
}

// PublishBookingStatusChanged publishes a trip progress notification
func (g *BookingGW) PublishBookingStatusChanged(ctx context.Context, booking *models.Booking) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingStatus, eventFromBooking(booking))
}

// PublishBookingCancelled publishes a cancellation notification
func (g *BookingGW) PublishBookingCancelled(ctx context.Context, booking *models.Booking) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingCancelled, eventFromBooking(booking))
}

// PublishBookingCompleted publishes a completion notification
func (g *BookingGW) PublishBookingCompleted(ctx context.Context, booking *models.Booking) error {
	return g.natsClient.PublishJSON(constants.SubjectBookingCompleted, eventFromBooking(booking))
}

// PublishReviewSubmitted publishes a review notification
func (g *BookingGW) PublishReviewSubmitted(ctx context.Context, review *models.Review) error {
	return g.natsClient.PublishJSON(constants.SubjectReviewSubmitted, ReviewEvent{
		BookingID:   review.BookingID.String(),
		ReviewerID:  review.ReviewerID.String(),
		FulfillerID: review.FulfillerID.String(),
		Rating:      review.Rating,
		Timestamp:   models.Now(),
	})
}
