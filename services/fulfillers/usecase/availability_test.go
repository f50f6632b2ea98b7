package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/services/fulfillers/mocks"
)

func TestSetAvailability_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	mockGW := mocks.NewMockFulfillerGW(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mockGW)

	userID := uuid.New()
	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Fulfiller{
		ID:             fulfillerID,
		UserID:         userID,
		ApprovalStatus: models.ApprovalStatusApproved,
		Availability:   models.AvailabilityOffline,
	}, nil)
	mockRepo.EXPECT().UpdateAvailability(gomock.Any(), fulfillerID, models.AvailabilityAvailable).Return(true, nil)
	mockGW.EXPECT().PublishAvailabilityChanged(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	fulfiller, err := uc.SetAvailability(context.Background(), userID, models.AvailabilityAvailable)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.AvailabilityAvailable, fulfiller.Availability)
}

func TestSetAvailability_BusyNotSettable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewFulfillerUC(testConfig(), mocks.NewMockFulfillerRepo(ctrl), mocks.NewMockFulfillerGW(ctrl))

	_, err := uc.SetAvailability(context.Background(), uuid.New(), models.AvailabilityBusy)

	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestSetAvailability_NotApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	userID := uuid.New()
	mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Fulfiller{
		ID:             uuid.New(),
		UserID:         userID,
		ApprovalStatus: models.ApprovalStatusPending,
	}, nil)

	_, err := uc.SetAvailability(context.Background(), userID, models.AvailabilityAvailable)

	assert.Equal(t, errs.KindFulfillerNotApproved, errs.KindOf(err))
}

func TestSetAvailability_BlockedWhileReserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	userID := uuid.New()
	bookingID := uuid.New()

	// Any desired change is blocked while a booking is bound, regardless of
	// the availability recorded before the reservation.
	for _, desired := range []models.Availability{
		models.AvailabilityOffline, models.AvailabilityAvailable,
	} {
		mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Fulfiller{
			ID:               uuid.New(),
			UserID:           userID,
			ApprovalStatus:   models.ApprovalStatusApproved,
			Availability:     models.AvailabilityBusy,
			CurrentBookingID: &bookingID,
		}, nil)

		_, err := uc.SetAvailability(context.Background(), userID, desired)

		assert.Equal(t, errs.KindBlockedByActiveBooking, errs.KindOf(err),
			"desired %s", desired)
	}
}

func TestSetAvailability_ReservationWinsConcurrentToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	userID := uuid.New()
	fulfillerID := uuid.New()

	// The read sees no bound booking, but a reservation lands before the
	// write; the conditional update reports zero rows and the toggle must
	// not clobber the reservation.
	mockRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&models.Fulfiller{
		ID:             fulfillerID,
		UserID:         userID,
		ApprovalStatus: models.ApprovalStatusApproved,
		Availability:   models.AvailabilityAvailable,
	}, nil)
	mockRepo.EXPECT().UpdateAvailability(gomock.Any(), fulfillerID, models.AvailabilityOffline).Return(false, nil)

	_, err := uc.SetAvailability(context.Background(), userID, models.AvailabilityOffline)

	assert.Equal(t, errs.KindBlockedByActiveBooking, errs.KindOf(err))
}

func TestReserve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	bookingID := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), fulfillerID).Return(&models.Fulfiller{
		ID:             fulfillerID,
		ApprovalStatus: models.ApprovalStatusApproved,
		Availability:   models.AvailabilityAvailable,
	}, nil)
	mockRepo.EXPECT().ReserveIfFree(gomock.Any(), fulfillerID, bookingID).Return(true, nil)

	err := uc.Reserve(context.Background(), fulfillerID, bookingID)

	assert.NoError(t, err)
}

func TestReserve_NotApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), fulfillerID).Return(&models.Fulfiller{
		ID:             fulfillerID,
		ApprovalStatus: models.ApprovalStatusSuspended,
	}, nil)

	err := uc.Reserve(context.Background(), fulfillerID, uuid.New())

	assert.Equal(t, errs.KindFulfillerNotApproved, errs.KindOf(err))
}

func TestReserve_AlreadyReserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetByID(gomock.Any(), fulfillerID).Return(&models.Fulfiller{
		ID:             fulfillerID,
		ApprovalStatus: models.ApprovalStatusApproved,
	}, nil)
	mockRepo.EXPECT().ReserveIfFree(gomock.Any(), fulfillerID, gomock.Any()).Return(false, nil)

	err := uc.Reserve(context.Background(), fulfillerID, uuid.New())

	assert.Equal(t, errs.KindFulfillerBusy, errs.KindOf(err))
}

func TestRelease_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().ReleaseBooking(gomock.Any(), fulfillerID).Return(nil).Times(2)

	assert.NoError(t, uc.Release(context.Background(), fulfillerID))
	assert.NoError(t, uc.Release(context.Background(), fulfillerID))
}
