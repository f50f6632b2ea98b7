package errs

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable classification of an expected, recoverable
// failure. Every error leaving a usecase carries one.
type Kind string

const (
	KindNotFound               Kind = "not_found"
	KindValidation             Kind = "validation"
	KindUnauthorized           Kind = "unauthorized"
	KindInvalidTransition      Kind = "invalid_transition"
	KindWrongBookingState      Kind = "wrong_booking_state"
	KindAlreadyTerminal        Kind = "already_terminal"
	KindFulfillerNotApproved   Kind = "fulfiller_not_approved"
	KindFulfillerBusy          Kind = "fulfiller_busy"
	KindBlockedByActiveBooking Kind = "blocked_by_active_booking"
	KindDuplicateReview        Kind = "duplicate_review"
	KindPartialFailure         Kind = "partial_failure"
	KindUnavailable            Kind = "unavailable"
)

// AppError pairs a Kind with a human-readable message and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given kind and message.
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap creates an AppError wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain, or "" for unclassified errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func NotFound(message string) *AppError        { return New(KindNotFound, message) }
func Validation(message string) *AppError      { return New(KindValidation, message) }
func Unauthorized(message string) *AppError    { return New(KindUnauthorized, message) }
func AlreadyTerminal(message string) *AppError { return New(KindAlreadyTerminal, message) }

func InvalidTransition(message string) *AppError {
	return New(KindInvalidTransition, message)
}

func WrongBookingState(message string) *AppError {
	return New(KindWrongBookingState, message)
}

func FulfillerNotApproved(message string) *AppError {
	return New(KindFulfillerNotApproved, message)
}

func FulfillerBusy(message string) *AppError {
	return New(KindFulfillerBusy, message)
}

func BlockedByActiveBooking(message string) *AppError {
	return New(KindBlockedByActiveBooking, message)
}

func DuplicateReview(message string) *AppError {
	return New(KindDuplicateReview, message)
}

func PartialFailure(message string, err error) *AppError {
	return Wrap(KindPartialFailure, message, err)
}

func Unavailable(message string, err error) *AppError {
	return Wrap(KindUnavailable, message, err)
}
