package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAssigned  BookingStatus = "driver_assigned"
	BookingStatusEnRoute   BookingStatus = "driver_en_route"
	BookingStatusPickedUp  BookingStatus = "picked_up"
	BookingStatusInTransit BookingStatus = "in_transit"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingType discriminates ride bookings from delivery bookings
type BookingType string

const (
	BookingTypeRide     BookingType = "ride"
	BookingTypeDelivery BookingType = "delivery"
)

// bookingTransitions is the single source of truth for legal status moves.
// Adding a state means adding one entry here.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusAssigned, BookingStatusCancelled},
	BookingStatusAssigned:  {BookingStatusEnRoute, BookingStatusCancelled},
	BookingStatusEnRoute:   {BookingStatusPickedUp, BookingStatusCancelled},
	BookingStatusPickedUp:  {BookingStatusInTransit, BookingStatusCancelled},
	BookingStatusInTransit: {BookingStatusCompleted, BookingStatusCancelled},
}

// cancelRoles lists which actor roles may cancel a booking in a given status.
// Once the package is picked up only an admin may cancel.
var cancelRoles = map[BookingStatus][]string{
	BookingStatusPending:   {RoleUser, RoleAdmin},
	BookingStatusAssigned:  {RoleUser, RoleDriver, RoleAdmin},
	BookingStatusEnRoute:   {RoleUser, RoleDriver, RoleAdmin},
	BookingStatusPickedUp:  {RoleAdmin},
	BookingStatusInTransit: {RoleAdmin},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanCancel reports whether the given role may cancel a booking in the given status.
func CanCancel(status BookingStatus, role string) bool {
	for _, r := range cancelRoles[status] {
		if r == role {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAssigned, BookingStatusEnRoute,
		BookingStatusPickedUp, BookingStatusInTransit, BookingStatusCompleted,
		BookingStatusCancelled:
		return true
	}
	return false
}

// TimestampColumn returns the bookings column stamped when a booking enters
// the status, or "" for statuses that carry no stamp of their own.
func (s BookingStatus) TimestampColumn() string {
	switch s {
	case BookingStatusAssigned:
		return "assigned_at"
	case BookingStatusEnRoute:
		return "en_route_at"
	case BookingStatusPickedUp:
		return "picked_up_at"
	case BookingStatusInTransit:
		return "in_transit_at"
	case BookingStatusCompleted:
		return "completed_at"
	case BookingStatusCancelled:
		return "cancelled_at"
	}
	return ""
}

// Price is the agreed price for a booking, fixed at assignment time.
// Only the admin class that set it may change it afterwards.
type Price struct {
	Amount   float64   `json:"amount" db:"price_amount"`
	Currency string    `json:"currency" db:"price_currency"`
	SetBy    uuid.UUID `json:"set_by" db:"price_set_by"`
	SetAt    time.Time `json:"set_at" db:"price_set_at"`
}

// Payment status values for a booking. Payment confirmation is a flag, not a
// gateway integration.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
)

// Payment carries the payment metadata of a booking.
type Payment struct {
	Method      string     `json:"method" db:"payment_method"`
	Status      string     `json:"status" db:"payment_status"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty" db:"payment_confirmed_at"`
}

// RideDetails holds the fields only ride bookings carry.
type RideDetails struct {
	PickupLocation  Location `json:"pickup_location"`
	DropoffLocation Location `json:"dropoff_location"`
}

// DeliveryDetails holds the fields only delivery bookings carry.
type DeliveryDetails struct {
	PickupAddress      string `json:"pickup_address"`
	DropoffAddress     string `json:"dropoff_address"`
	PackageDescription string `json:"package_description,omitempty"`
	RecipientName      string `json:"recipient_name,omitempty"`
	RecipientPhone     string `json:"recipient_phone,omitempty"`
}

// Booking represents one trip or delivery request. A booking is never
// deleted; it only ever reaches a terminal status.
type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	RequesterID uuid.UUID     `json:"requester_id" db:"requester_id"`
	Type        BookingType   `json:"type" db:"type"`
	Status      BookingStatus `json:"status" db:"status"`
	FulfillerID *uuid.UUID    `json:"fulfiller_id,omitempty" db:"fulfiller_id"`

	Price   *Price  `json:"price,omitempty"`
	Payment Payment `json:"payment"`

	// Exactly one of these is set, selected by Type.
	Ride     *RideDetails     `json:"ride,omitempty"`
	Delivery *DeliveryDetails `json:"delivery,omitempty"`

	RequestedAt time.Time  `json:"requested_at" db:"requested_at"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty" db:"assigned_at"`
	EnRouteAt   *time.Time `json:"en_route_at,omitempty" db:"en_route_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty" db:"picked_up_at"`
	InTransitAt *time.Time `json:"in_transit_at,omitempty" db:"in_transit_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`

	CancelledBy  string `json:"cancelled_by,omitempty" db:"cancelled_by"`
	CancelReason string `json:"cancel_reason,omitempty" db:"cancel_reason"`
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Status      BookingStatus
	Type        BookingType
	RequesterID *uuid.UUID
	Limit       int
	Offset      int
}
