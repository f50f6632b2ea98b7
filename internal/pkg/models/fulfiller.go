package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FulfillerType discriminates drivers from logistics personnel. Both share
// the same capability set: being bound to at most one booking at a time.
type FulfillerType string

const (
	FulfillerTypeDriver    FulfillerType = "driver"
	FulfillerTypeLogistics FulfillerType = "logistics"
)

// ApprovalStatus is the admin-controlled approval state of a fulfiller.
type ApprovalStatus string

const (
	ApprovalStatusPending   ApprovalStatus = "pending_approval"
	ApprovalStatusApproved  ApprovalStatus = "approved"
	ApprovalStatusRejected  ApprovalStatus = "rejected"
	ApprovalStatusSuspended ApprovalStatus = "suspended"
)

// approvalTransitions guards the approval workflow: a rejected fulfiller
// stays rejected, suspension is reversible.
var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalStatusPending:   {ApprovalStatusApproved, ApprovalStatusRejected},
	ApprovalStatusApproved:  {ApprovalStatusSuspended},
	ApprovalStatusSuspended: {ApprovalStatusApproved},
}

// CanChangeApproval reports whether an approval state change is legal.
func CanChangeApproval(from, to ApprovalStatus) bool {
	for _, next := range approvalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Availability is the fulfiller's self-reported working state. The busy
// value is owned by the reservation engine, never set directly by the
// fulfiller.
type Availability string

const (
	AvailabilityOffline   Availability = "offline"
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
)

// DimensionRating is the running average for one rating dimension.
// Each dimension keeps its own sample count so an unrated dimension is
// never diluted by reviews that skipped it.
type DimensionRating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatingBreakdown maps a rating dimension (e.g. "punctuality") to its
// running average. Stored as JSONB.
type RatingBreakdown map[string]DimensionRating

// Value implements driver.Valuer for JSONB storage.
func (b RatingBreakdown) Value() (driver.Value, error) {
	if b == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for JSONB storage.
func (b *RatingBreakdown) Scan(src interface{}) error {
	if src == nil {
		*b = RatingBreakdown{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported rating breakdown type %T", src)
	}
	return json.Unmarshal(data, b)
}

// Rating is the incrementally maintained rating snapshot of a fulfiller.
type Rating struct {
	Average      float64         `json:"average" db:"rating_average"`
	TotalRatings int             `json:"total_ratings" db:"rating_total"`
	Breakdown    RatingBreakdown `json:"breakdown" db:"rating_breakdown"`
}

// Fulfiller represents an approvable service provider: a driver or a
// logistics person. CurrentBookingID is the single booking currently bound
// to the fulfiller; when it is set the availability is always busy.
type Fulfiller struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	UserID           uuid.UUID      `json:"user_id" db:"user_id"`
	Type             FulfillerType  `json:"type" db:"type"`
	FullName         string         `json:"full_name" db:"full_name"`
	VehicleType      string         `json:"vehicle_type" db:"vehicle_type"`
	VehiclePlate     string         `json:"vehicle_plate" db:"vehicle_plate"`
	ApprovalStatus   ApprovalStatus `json:"approval_status" db:"approval_status"`
	Availability     Availability   `json:"availability" db:"availability"`
	CurrentBookingID *uuid.UUID     `json:"current_booking_id,omitempty" db:"current_booking_id"`
	Rating           Rating         `json:"rating"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at"`
}

// Approved reports whether the fulfiller may be assigned work.
func (f *Fulfiller) Approved() bool {
	return f.ApprovalStatus == ApprovalStatusApproved
}
