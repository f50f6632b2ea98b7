package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

// Register creates a new fulfiller in pending approval.
func (uc *FulfillerUC) Register(ctx context.Context, fulfiller *models.Fulfiller) error {
	if fulfiller.Type != models.FulfillerTypeDriver && fulfiller.Type != models.FulfillerTypeLogistics {
		return errs.Validation("unknown fulfiller type")
	}

	existing, err := uc.repo.GetByUserID(ctx, fulfiller.UserID)
	if err != nil {
		return fmt.Errorf("failed to check existing fulfiller: %w", err)
	}
	if existing != nil {
		return errs.Validation("user is already registered as a fulfiller")
	}

	now := models.Now()
	fulfiller.ID = uuid.New()
	fulfiller.ApprovalStatus = models.ApprovalStatusPending
	fulfiller.Availability = models.AvailabilityOffline
	fulfiller.CurrentBookingID = nil
	fulfiller.Rating = models.Rating{Breakdown: models.RatingBreakdown{}}
	fulfiller.CreatedAt = now
	fulfiller.UpdatedAt = now

	if err := uc.repo.Create(ctx, fulfiller); err != nil {
		return fmt.Errorf("failed to register fulfiller: %w", err)
	}

	logger.Info("Fulfiller registered",
		logger.String("fulfiller_id", fulfiller.ID.String()),
		logger.String("type", string(fulfiller.Type)))
	return nil
}

// GetByID retrieves a fulfiller by ID
func (uc *FulfillerUC) GetByID(ctx context.Context, id uuid.UUID) (*models.Fulfiller, error) {
	fulfiller, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfiller: %w", err)
	}
	if fulfiller == nil {
		return nil, errs.NotFound("fulfiller not found")
	}
	return fulfiller, nil
}

// GetByUserID retrieves a fulfiller by its identity-provider user ID
func (uc *FulfillerUC) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Fulfiller, error) {
	fulfiller, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fulfiller: %w", err)
	}
	if fulfiller == nil {
		return nil, errs.NotFound("fulfiller not found")
	}
	return fulfiller, nil
}

// SetApproval moves a fulfiller through the approval workflow. The write is
// conditional on the current state so two concurrent admins cannot both
// succeed.
func (uc *FulfillerUC) SetApproval(ctx context.Context, id uuid.UUID, target models.ApprovalStatus) (*models.Fulfiller, error) {
	fulfiller, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanChangeApproval(fulfiller.ApprovalStatus, target) {
		return nil, errs.InvalidTransition(fmt.Sprintf(
			"cannot change approval from %s to %s", fulfiller.ApprovalStatus, target))
	}

	ok, err := uc.repo.UpdateApprovalIf(ctx, id, fulfiller.ApprovalStatus, target)
	if err != nil {
		return nil, fmt.Errorf("failed to update approval: %w", err)
	}
	if !ok {
		return nil, errs.InvalidTransition("approval state changed concurrently")
	}

	fulfiller.ApprovalStatus = target

	if target == models.ApprovalStatusApproved {
		if err := uc.gw.PublishFulfillerApproved(ctx, fulfiller); err != nil {
			logger.Warn("Failed to publish fulfiller approved event",
				logger.String("fulfiller_id", id.String()),
				logger.Err(err))
		}
	}

	return fulfiller, nil
}

// ListAvailable returns approved fulfillers of a type. Reserved fulfillers
// are included on purpose: assignment is a manual admin decision and the
// admin sees the full picture, including an override of a busy fulfiller.
func (uc *FulfillerUC) ListAvailable(ctx context.Context, fulfillerType models.FulfillerType) ([]*models.Fulfiller, error) {
	fulfillers, err := uc.repo.ListByApproval(ctx, fulfillerType, models.ApprovalStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list fulfillers: %w", err)
	}
	return fulfillers, nil
}
