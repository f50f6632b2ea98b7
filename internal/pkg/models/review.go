package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is the single review a requester may leave on a completed booking.
// The reviewer/fulfiller/booking triple is immutable once created and
// uniqueness per booking is enforced by the store.
type Review struct {
	ID          uuid.UUID          `json:"id" db:"id"`
	BookingID   uuid.UUID          `json:"booking_id" db:"booking_id"`
	ReviewerID  uuid.UUID          `json:"reviewer_id" db:"reviewer_id"`
	FulfillerID uuid.UUID          `json:"fulfiller_id" db:"fulfiller_id"`
	Rating      float64            `json:"rating" db:"rating"`
	Breakdown   map[string]float64 `json:"breakdown,omitempty"`
	Comment     string             `json:"comment,omitempty" db:"comment"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
}
