package usecase

import (
	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/internal/pkg/retry"
	"github.com/kebba/gomove/services/fulfillers"
)

// FulfillerUC implements the fulfillers.FulfillerUC interface
type FulfillerUC struct {
	cfg     *models.Config
	repo    fulfillers.FulfillerRepo
	gw      fulfillers.FulfillerGW
	retrier *retry.Retrier
}

// NewFulfillerUC creates a new fulfiller use case
func NewFulfillerUC(
	cfg *models.Config,
	repo fulfillers.FulfillerRepo,
	gw fulfillers.FulfillerGW,
) *FulfillerUC {
	retryCfg := retry.DefaultConfig()
	if cfg.Booking.MaxWriteRetries > 0 {
		retryCfg.MaxRetries = cfg.Booking.MaxWriteRetries
	}
	// Classified domain errors are final; only transient storage failures
	// and lost write races are worth retrying.
	retryCfg.RetryableFunc = func(err error) bool {
		return errs.KindOf(err) == ""
	}
	return &FulfillerUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		retrier: retry.New(retryCfg),
	}
}
