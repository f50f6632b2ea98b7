package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kebba/gomove/internal/pkg/models"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewBookingRepository(&models.Config{}, sqlxDB)

	return repo, mock, func() { mockDB.Close() }
}

var bookingRowColumns = []string{
	"id", "requester_id", "type", "status", "fulfiller_id", "details",
	"price_amount", "price_currency", "price_set_by", "price_set_at",
	"payment_method", "payment_status", "payment_confirmed_at",
	"requested_at", "assigned_at", "en_route_at", "picked_up_at",
	"in_transit_at", "completed_at", "cancelled_at",
	"cancelled_by", "cancel_reason",
}

func TestBookingRepo_GetByID(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, b *models.Booking, err error)
	}{
		{
			name: "Assigned Ride Booking",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				now := time.Now().UTC()
				details := []byte(`{"pickup_location":{"latitude":13.4549,"longitude":-16.579},"dropoff_location":{"latitude":13.4035,"longitude":-16.6957}}`)
				rows := sqlmock.NewRows(bookingRowColumns).AddRow(
					id.String(), uuid.New().String(), "ride", "driver_assigned",
					uuid.New().String(), details,
					350.0, "GMD", uuid.New().String(), now,
					"cash", "pending", nil,
					now, now, nil, nil,
					nil, nil, nil,
					nil, nil,
				)
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
					WithArgs(id).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, b)
				assert.Equal(t, models.BookingStatusAssigned, b.Status)
				require.NotNil(t, b.FulfillerID)
				require.NotNil(t, b.Ride)
				assert.InDelta(t, 13.4549, b.Ride.PickupLocation.Latitude, 1e-9)
				require.NotNil(t, b.Price)
				assert.InDelta(t, 350.0, b.Price.Amount, 1e-9)
				assert.Equal(t, "GMD", b.Price.Currency)
				require.NotNil(t, b.AssignedAt)
				assert.Nil(t, b.EnRouteAt)
				assert.Nil(t, b.Delivery)
			},
		},
		{
			name: "Pending Delivery Booking Without Price",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				now := time.Now().UTC()
				details := []byte(`{"pickup_address":"12 Kairaba Ave","dropoff_address":"3 Atlantic Rd","recipient_name":"Awa"}`)
				rows := sqlmock.NewRows(bookingRowColumns).AddRow(
					id.String(), uuid.New().String(), "delivery", "pending",
					nil, details,
					nil, nil, nil, nil,
					"cash", "pending", nil,
					now, nil, nil, nil,
					nil, nil, nil,
					nil, nil,
				)
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
					WithArgs(id).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, b)
				assert.Nil(t, b.FulfillerID)
				assert.Nil(t, b.Price)
				require.NotNil(t, b.Delivery)
				assert.Equal(t, "Awa", b.Delivery.RecipientName)
				assert.Nil(t, b.Ride)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Nil(t, b)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
					WithArgs(id).
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, b *models.Booking, err error) {
				assert.Error(t, err)
				assert.Nil(t, b)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			b, err := repo.GetByID(context.Background(), id)

			tc.assertFunc(t, b, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepo_Create(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	booking := &models.Booking{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Type:        models.BookingTypeRide,
		Status:      models.BookingStatusPending,
		Ride: &models.RideDetails{
			PickupLocation:  models.Location{Latitude: 13.4549, Longitude: -16.579},
			DropoffLocation: models.Location{Latitude: 13.4035, Longitude: -16.6957},
		},
		Payment:     models.Payment{Method: "cash", Status: models.PaymentStatusPending},
		RequestedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(booking.ID, booking.RequesterID, string(booking.Type), string(booking.Status),
			sqlmock.AnyArg(), "cash", "pending", booking.RequestedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), booking)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_Create_UnknownType(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	err := repo.Create(context.Background(), &models.Booking{Type: "teleport"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_AssignIf(t *testing.T) {
	t.Run("Still Pending", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		id := uuid.New()
		fulfillerID := uuid.New()
		price := models.Price{Amount: 350, Currency: "GMD", SetBy: uuid.New(), SetAt: time.Now().UTC()}
		assignedAt := time.Now().UTC()

		mock.ExpectExec("UPDATE bookings SET fulfiller_id").
			WithArgs(fulfillerID, string(models.BookingStatusAssigned),
				price.Amount, price.Currency, price.SetBy, price.SetAt,
				assignedAt, id, string(models.BookingStatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.AssignIf(context.Background(), id, fulfillerID, price, assignedAt)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Left Pending", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		id := uuid.New()
		fulfillerID := uuid.New()
		price := models.Price{Amount: 350, Currency: "GMD", SetBy: uuid.New(), SetAt: time.Now().UTC()}

		mock.ExpectExec("UPDATE bookings SET fulfiller_id").
			WithArgs(fulfillerID, string(models.BookingStatusAssigned),
				price.Amount, price.Currency, price.SetBy, price.SetAt,
				sqlmock.AnyArg(), id, string(models.BookingStatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.AssignIf(context.Background(), id, fulfillerID, price, time.Now().UTC())

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBookingRepo_UpdateStatusIf(t *testing.T) {
	t.Run("Stamps Status Column", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		id := uuid.New()
		stampedAt := time.Now().UTC()
		mock.ExpectExec("UPDATE bookings SET status = \\$1, en_route_at = \\$2").
			WithArgs(string(models.BookingStatusEnRoute), stampedAt, id,
				string(models.BookingStatusAssigned)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateStatusIf(context.Background(), id,
			models.BookingStatusAssigned, models.BookingStatusEnRoute, stampedAt)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Concurrent Writer Won", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		id := uuid.New()
		mock.ExpectExec("UPDATE bookings SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdateStatusIf(context.Background(), id,
			models.BookingStatusInTransit, models.BookingStatusCompleted, time.Now().UTC())

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Status Without Timestamp Column", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		ok, err := repo.UpdateStatusIf(context.Background(), uuid.New(),
			models.BookingStatusAssigned, models.BookingStatusPending, time.Now().UTC())

		assert.Error(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepo_CancelIf(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	id := uuid.New()
	cancelledAt := time.Now().UTC()
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(string(models.BookingStatusCancelled), cancelledAt, "user", "changed my mind",
			id, string(models.BookingStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.CancelIf(context.Background(), id,
		models.BookingStatusPending, "user", "changed my mind", cancelledAt)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_ConfirmPaymentIf(t *testing.T) {
	t.Run("Pending Payment On Completed Booking", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		id := uuid.New()
		confirmedAt := time.Now().UTC()
		mock.ExpectExec("UPDATE bookings SET payment_status").
			WithArgs(models.PaymentStatusConfirmed, confirmedAt, id,
				string(models.BookingStatusCompleted), models.PaymentStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.ConfirmPaymentIf(context.Background(), id, confirmedAt)

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Confirmed", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE bookings SET payment_status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.ConfirmPaymentIf(context.Background(), uuid.New(), time.Now().UTC())

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBookingRepo_List(t *testing.T) {
	t.Run("Filters And Default Limit", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		requesterID := uuid.New()
		now := time.Now().UTC()
		details := []byte(`{"pickup_address":"12 Kairaba Ave","dropoff_address":"3 Atlantic Rd"}`)
		rows := sqlmock.NewRows(bookingRowColumns).AddRow(
			uuid.New().String(), requesterID.String(), "delivery", "pending",
			nil, details,
			nil, nil, nil, nil,
			"cash", "pending", nil,
			now, nil, nil, nil,
			nil, nil, nil,
			nil, nil,
		)
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE 1=1 AND status (.+) AND requester_id (.+) ORDER BY requested_at DESC LIMIT").
			WithArgs(string(models.BookingStatusPending), requesterID, 20).
			WillReturnRows(rows)

		bookings, err := repo.List(context.Background(), models.BookingFilter{
			Status:      models.BookingStatusPending,
			RequesterID: &requesterID,
		})

		assert.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, requesterID, bookings[0].RequesterID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Explicit Limit And Offset", func(t *testing.T) {
		repo, mock, cleanup := setupBookingRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE 1=1 ORDER BY requested_at DESC LIMIT (.+) OFFSET").
			WithArgs(5, 10).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		bookings, err := repo.List(context.Background(), models.BookingFilter{Limit: 5, Offset: 10})

		assert.NoError(t, err)
		assert.Empty(t, bookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepo_UpdatePrice(t *testing.T) {
	repo, mock, cleanup := setupBookingRepoTest(t)
	defer cleanup()

	id := uuid.New()
	price := models.Price{Amount: 500, Currency: "GMD", SetBy: uuid.New(), SetAt: time.Now().UTC()}
	mock.ExpectExec("UPDATE bookings SET price_amount").
		WithArgs(price.Amount, price.Currency, price.SetBy, price.SetAt, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePrice(context.Background(), id, price)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
