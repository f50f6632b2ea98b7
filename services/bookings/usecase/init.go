package usecase

import (
	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/internal/pkg/retry"
	"github.com/kebba/gomove/services/bookings"
)

// BookingUC implements the bookings.BookingUC interface
type BookingUC struct {
	cfg          *models.Config
	repo         bookings.BookingRepo
	fulfillerSvc bookings.FulfillerSvc
	gw           bookings.BookingGW
	retrier      *retry.Retrier
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	repo bookings.BookingRepo,
	fulfillerSvc bookings.FulfillerSvc,
	gw bookings.BookingGW,
) *BookingUC {
	retryCfg := retry.DefaultConfig()
	if cfg.Booking.MaxWriteRetries > 0 {
		retryCfg.MaxRetries = cfg.Booking.MaxWriteRetries
	}
	// Classified domain errors are final; only transient storage failures
	// are worth retrying.
	retryCfg.RetryableFunc = func(err error) bool {
		return errs.KindOf(err) == ""
	}
	return &BookingUC{
		cfg:          cfg,
		repo:         repo,
		fulfillerSvc: fulfillerSvc,
		gw:           gw,
		retrier:      retry.New(retryCfg),
	}
}
