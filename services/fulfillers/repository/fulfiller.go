package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kebba/gomove/internal/pkg/constants"
	"github.com/kebba/gomove/internal/pkg/database"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/models"
)

const fulfillerColumns = `
	id, user_id, type, full_name, vehicle_type, vehicle_plate,
	approval_status, availability, current_booking_id,
	rating_average, rating_total, rating_breakdown,
	created_at, updated_at
`

// FulfillerRepo implements the fulfiller repository interface backed by
// Postgres, with a best-effort Redis availability set alongside.
type FulfillerRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewFulfillerRepository creates a new fulfiller repository
func NewFulfillerRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *FulfillerRepo {
	return &FulfillerRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFulfiller(row rowScanner) (*models.Fulfiller, error) {
	var f models.Fulfiller
	var currentBookingID sql.NullString

	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.Type,
		&f.FullName,
		&f.VehicleType,
		&f.VehiclePlate,
		&f.ApprovalStatus,
		&f.Availability,
		&currentBookingID,
		&f.Rating.Average,
		&f.Rating.TotalRatings,
		&f.Rating.Breakdown,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if currentBookingID.Valid {
		bookingID, err := uuid.Parse(currentBookingID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid current booking id: %w", err)
		}
		f.CurrentBookingID = &bookingID
	}

	return &f, nil
}

// Create inserts a new fulfiller in pending approval
func (r *FulfillerRepo) Create(ctx context.Context, fulfiller *models.Fulfiller) error {
	query := `
		INSERT INTO fulfillers (
			id, user_id, type, full_name, vehicle_type, vehicle_plate,
			approval_status, availability,
			rating_average, rating_total, rating_breakdown,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		fulfiller.ID,
		fulfiller.UserID,
		fulfiller.Type,
		fulfiller.FullName,
		fulfiller.VehicleType,
		fulfiller.VehiclePlate,
		fulfiller.ApprovalStatus,
		fulfiller.Availability,
		fulfiller.Rating.Average,
		fulfiller.Rating.TotalRatings,
		fulfiller.Rating.Breakdown,
		fulfiller.CreatedAt,
		fulfiller.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fulfiller: %w", err)
	}
	return nil
}

// GetByID retrieves a fulfiller by ID
func (r *FulfillerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Fulfiller, error) {
	query := fmt.Sprintf(`SELECT %s FROM fulfillers WHERE id = $1`, fulfillerColumns)

	f, err := scanFulfiller(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fulfiller: %w", err)
	}
	return f, nil
}

// GetByUserID retrieves a fulfiller by its identity-provider user ID
func (r *FulfillerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Fulfiller, error) {
	query := fmt.Sprintf(`SELECT %s FROM fulfillers WHERE user_id = $1`, fulfillerColumns)

	f, err := scanFulfiller(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fulfiller by user: %w", err)
	}
	return f, nil
}

// ListByApproval lists fulfillers of a type in the given approval state,
// most recently registered first.
func (r *FulfillerRepo) ListByApproval(ctx context.Context, fulfillerType models.FulfillerType, status models.ApprovalStatus) ([]*models.Fulfiller, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM fulfillers
		WHERE type = $1 AND approval_status = $2
		ORDER BY created_at DESC
	`, fulfillerColumns)

	rows, err := r.db.QueryContext(ctx, query, fulfillerType, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list fulfillers: %w", err)
	}
	defer rows.Close()

	var fulfillers []*models.Fulfiller
	for rows.Next() {
		f, err := scanFulfiller(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fulfiller: %w", err)
		}
		fulfillers = append(fulfillers, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fulfillers, nil
}

// UpdateApprovalIf moves the approval state only when the row is still in
// the expected state.
func (r *FulfillerRepo) UpdateApprovalIf(ctx context.Context, id uuid.UUID, expected, next models.ApprovalStatus) (bool, error) {
	query := `
		UPDATE fulfillers
		SET approval_status = $1, updated_at = $2
		WHERE id = $3 AND approval_status = $4
	`

	result, err := r.db.ExecContext(ctx, query, next, models.Now(), id, expected)
	if err != nil {
		return false, fmt.Errorf("failed to update approval status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}

// ReserveIfFree binds the booking with a single conditional update: the
// write only lands when no booking is currently bound, so two concurrent
// assignments can never both take the same fulfiller.
func (r *FulfillerRepo) ReserveIfFree(ctx context.Context, id, bookingID uuid.UUID) (bool, error) {
	query := `
		UPDATE fulfillers
		SET current_booking_id = $1, availability = $2, updated_at = $3
		WHERE id = $4 AND current_booking_id IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, bookingID, models.AvailabilityBusy, models.Now(), id)
	if err != nil {
		return false, fmt.Errorf("failed to reserve fulfiller: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 1 {
		r.removeFromAvailableSet(ctx, id)
		return true, nil
	}
	return false, nil
}

// ReleaseBooking clears the binding and restores availability. The write is
// unconditional on current_booking_id so releasing twice is a no-op.
func (r *FulfillerRepo) ReleaseBooking(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE fulfillers
		SET current_booking_id = NULL, availability = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, models.AvailabilityAvailable, models.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to release fulfiller: %w", err)
	}

	r.addToAvailableSet(ctx, id)
	return nil
}

// UpdateAvailability applies a direct availability change. The write is
// conditional on no booking being bound, so a reservation landing between
// the caller's read and this write cannot be overwritten; returns false
// when the fulfiller holds an active booking.
func (r *FulfillerRepo) UpdateAvailability(ctx context.Context, id uuid.UUID, desired models.Availability) (bool, error) {
	query := `
		UPDATE fulfillers
		SET availability = $1, updated_at = $2
		WHERE id = $3 AND current_booking_id IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, desired, models.Now(), id)
	if err != nil {
		return false, fmt.Errorf("failed to update availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected != 1 {
		return false, nil
	}

	if desired == models.AvailabilityAvailable {
		r.addToAvailableSet(ctx, id)
	} else {
		r.removeFromAvailableSet(ctx, id)
	}
	return true, nil
}

// Redis set maintenance is best-effort: Postgres stays the source of truth
// and a failed set update only degrades the admin listing annotation.

func (r *FulfillerRepo) addToAvailableSet(ctx context.Context, id uuid.UUID) {
	if r.redisClient == nil {
		return
	}
	f, err := r.GetByID(ctx, id)
	if err != nil || f == nil {
		return
	}
	key := fmt.Sprintf(constants.KeyAvailableFulfillers, f.Type)
	if err := r.redisClient.SAdd(ctx, key, id.String()); err != nil {
		logger.Warn("Failed to add fulfiller to available set",
			logger.String("fulfiller_id", id.String()),
			logger.Err(err))
	}
}

func (r *FulfillerRepo) removeFromAvailableSet(ctx context.Context, id uuid.UUID) {
	if r.redisClient == nil {
		return
	}
	for _, t := range []models.FulfillerType{models.FulfillerTypeDriver, models.FulfillerTypeLogistics} {
		key := fmt.Sprintf(constants.KeyAvailableFulfillers, t)
		if err := r.redisClient.SRem(ctx, key, id.String()); err != nil {
			logger.Warn("Failed to remove fulfiller from available set",
				logger.String("fulfiller_id", id.String()),
				logger.Err(err))
		}
	}
}
