package constants

// NATS Subjects
const (
	// Booking lifecycle events
	SubjectBookingCreated   = "booking.created"
	SubjectBookingAssigned  = "booking.assigned"
	SubjectBookingStatus    = "booking.status"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingCompleted = "booking.completed"

	// Fulfiller events
	SubjectFulfillerApproved     = "fulfiller.approved"
	SubjectFulfillerAvailability = "fulfiller.availability"

	// Review events
	SubjectReviewSubmitted = "review.submitted"
)
