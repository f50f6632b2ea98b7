package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kebba/gomove/internal/pkg/models"
)

const bookingColumns = `
	id, requester_id, type, status, fulfiller_id, details,
	price_amount, price_currency, price_set_by, price_set_at,
	payment_method, payment_status, payment_confirmed_at,
	requested_at, assigned_at, en_route_at, picked_up_at,
	in_transit_at, completed_at, cancelled_at,
	cancelled_by, cancel_reason
`

// BookingRepo implements the booking repository interface backed by
// Postgres.
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

func marshalDetails(booking *models.Booking) ([]byte, error) {
	switch booking.Type {
	case models.BookingTypeRide:
		return json.Marshal(booking.Ride)
	case models.BookingTypeDelivery:
		return json.Marshal(booking.Delivery)
	}
	return nil, fmt.Errorf("unknown booking type: %s", booking.Type)
}

func unmarshalDetails(booking *models.Booking, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	switch booking.Type {
	case models.BookingTypeRide:
		booking.Ride = &models.RideDetails{}
		return json.Unmarshal(data, booking.Ride)
	case models.BookingTypeDelivery:
		booking.Delivery = &models.DeliveryDetails{}
		return json.Unmarshal(data, booking.Delivery)
	}
	return fmt.Errorf("unknown booking type: %s", booking.Type)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	var fulfillerID sql.NullString
	var details []byte
	var priceAmount sql.NullFloat64
	var priceCurrency, priceSetBy sql.NullString
	var priceSetAt sql.NullTime
	var paymentConfirmedAt sql.NullTime
	var assignedAt, enRouteAt, pickedUpAt, inTransitAt, completedAt, cancelledAt sql.NullTime
	var cancelledBy, cancelReason sql.NullString

	err := row.Scan(
		&b.ID,
		&b.RequesterID,
		&b.Type,
		&b.Status,
		&fulfillerID,
		&details,
		&priceAmount,
		&priceCurrency,
		&priceSetBy,
		&priceSetAt,
		&b.Payment.Method,
		&b.Payment.Status,
		&paymentConfirmedAt,
		&b.RequestedAt,
		&assignedAt,
		&enRouteAt,
		&pickedUpAt,
		&inTransitAt,
		&completedAt,
		&cancelledAt,
		&cancelledBy,
		&cancelReason,
	)
	if err != nil {
		return nil, err
	}

	if fulfillerID.Valid {
		id, err := uuid.Parse(fulfillerID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid fulfiller id: %w", err)
		}
		b.FulfillerID = &id
	}

	if err := unmarshalDetails(&b, details); err != nil {
		return nil, fmt.Errorf("invalid booking details: %w", err)
	}

	if priceAmount.Valid {
		setBy, err := uuid.Parse(priceSetBy.String)
		if err != nil {
			return nil, fmt.Errorf("invalid price setter id: %w", err)
		}
		b.Price = &models.Price{
			Amount:   priceAmount.Float64,
			Currency: priceCurrency.String,
			SetBy:    setBy,
			SetAt:    priceSetAt.Time,
		}
	}

	if paymentConfirmedAt.Valid {
		b.Payment.ConfirmedAt = &paymentConfirmedAt.Time
	}

	for _, ts := range []struct {
		src sql.NullTime
		dst **time.Time
	}{
		{assignedAt, &b.AssignedAt},
		{enRouteAt, &b.EnRouteAt},
		{pickedUpAt, &b.PickedUpAt},
		{inTransitAt, &b.InTransitAt},
		{completedAt, &b.CompletedAt},
		{cancelledAt, &b.CancelledAt},
	} {
		if ts.src.Valid {
			t := ts.src.Time
			*ts.dst = &t
		}
	}

	if cancelledBy.Valid {
		b.CancelledBy = cancelledBy.String
	}
	if cancelReason.Valid {
		b.CancelReason = cancelReason.String
	}

	return &b, nil
}

// Create inserts a new booking in pending status
func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	details, err := marshalDetails(booking)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (
			id, requester_id, type, status, details,
			payment_method, payment_status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		booking.ID,
		booking.RequesterID,
		booking.Type,
		booking.Status,
		details,
		booking.Payment.Method,
		booking.Payment.Status,
		booking.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

// List returns bookings matching the filter, newest first.
func (r *BookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE 1=1`, bookingColumns)
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.RequesterID != nil {
		args = append(args, *filter.RequesterID)
		query += fmt.Sprintf(" AND requester_id = $%d", len(args))
	}

	query += " ORDER BY requested_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// AssignIf binds the fulfiller and fixes the price in one conditional
// write; a booking that left pending in the meantime is not touched.
func (r *BookingRepo) AssignIf(ctx context.Context, id, fulfillerID uuid.UUID, price models.Price, assignedAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET fulfiller_id = $1, status = $2,
		    price_amount = $3, price_currency = $4, price_set_by = $5, price_set_at = $6,
		    assigned_at = $7
		WHERE id = $8 AND status = $9
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		fulfillerID,
		models.BookingStatusAssigned,
		price.Amount,
		price.Currency,
		price.SetBy,
		price.SetAt,
		assignedAt,
		id,
		models.BookingStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to assign booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}

// UpdateStatusIf moves the status with the expected status as the write
// precondition and stamps the one timestamp column matching the new status.
func (r *BookingRepo) UpdateStatusIf(ctx context.Context, id uuid.UUID, expected, next models.BookingStatus, stampedAt time.Time) (bool, error) {
	column := next.TimestampColumn()
	if column == "" {
		return false, fmt.Errorf("status %s carries no timestamp column", next)
	}

	query := fmt.Sprintf(`UPDATE bookings SET status = $1, %s = $2 WHERE id = $3 AND status = $4`, column)

	result, err := r.db.ExecContext(ctx, query, next, stampedAt, id, expected)
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}

// CancelIf cancels the booking with the same conditional-write discipline,
// recording who cancelled and why.
func (r *BookingRepo) CancelIf(ctx context.Context, id uuid.UUID, expected models.BookingStatus, cancelledBy, reason string, cancelledAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1, cancelled_at = $2, cancelled_by = $3, cancel_reason = $4
		WHERE id = $5 AND status = $6
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.BookingStatusCancelled,
		cancelledAt,
		cancelledBy,
		reason,
		id,
		expected,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}

// UpdatePrice overwrites the price fields of a booking.
func (r *BookingRepo) UpdatePrice(ctx context.Context, id uuid.UUID, price models.Price) error {
	query := `
		UPDATE bookings
		SET price_amount = $1, price_currency = $2, price_set_by = $3, price_set_at = $4
		WHERE id = $5
	`

	_, err := r.db.ExecContext(ctx, query, price.Amount, price.Currency, price.SetBy, price.SetAt, id)
	if err != nil {
		return fmt.Errorf("failed to update price: %w", err)
	}
	return nil
}

// ConfirmPaymentIf confirms the payment only while the booking is completed
// and the payment is still pending, so confirmation cannot double-apply.
func (r *BookingRepo) ConfirmPaymentIf(ctx context.Context, id uuid.UUID, confirmedAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_status = $1, payment_confirmed_at = $2
		WHERE id = $3 AND status = $4 AND payment_status = $5
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.PaymentStatusConfirmed,
		confirmedAt,
		id,
		models.BookingStatusCompleted,
		models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("failed to confirm payment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}
