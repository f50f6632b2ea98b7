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

func TestIncrementalMean(t *testing.T) {
	// first sample becomes the average
	assert.InDelta(t, 5.0, incrementalMean(0, 0, 5), 1e-9)

	// (4.0*2 + 1.0) / 3
	assert.InDelta(t, 3.0, incrementalMean(4.0, 2, 1.0), 1e-9)

	// folding the same value keeps the average stable
	assert.InDelta(t, 3.5, incrementalMean(3.5, 99, 3.5), 1e-9)
}

func TestRecordRating_FirstRating(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetRating(gomock.Any(), fulfillerID).Return(&models.Rating{
		Breakdown: models.RatingBreakdown{},
	}, nil)
	mockRepo.EXPECT().UpdateRatingIf(gomock.Any(), fulfillerID, 0, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int, rating models.Rating) (bool, error) {
			assert.InDelta(t, 5.0, rating.Average, 1e-9)
			assert.Equal(t, 1, rating.TotalRatings)
			assert.InDelta(t, 4.0, rating.Breakdown["punctuality"].Average, 1e-9)
			assert.Equal(t, 1, rating.Breakdown["punctuality"].Count)
			return true, nil
		})

	// Act
	err := uc.RecordRating(context.Background(), fulfillerID, 5, map[string]float64{"punctuality": 4})

	// Assert
	assert.NoError(t, err)
}

func TestRecordRating_SkippedDimensionUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetRating(gomock.Any(), fulfillerID).Return(&models.Rating{
		Average:      4.0,
		TotalRatings: 2,
		Breakdown: models.RatingBreakdown{
			"punctuality": {Average: 3.0, Count: 2},
			"politeness":  {Average: 5.0, Count: 1},
		},
	}, nil)
	mockRepo.EXPECT().UpdateRatingIf(gomock.Any(), fulfillerID, 2, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ int, rating models.Rating) (bool, error) {
			// overall: (4*2 + 1) / 3
			assert.InDelta(t, 3.0, rating.Average, 1e-9)
			assert.Equal(t, 3, rating.TotalRatings)
			// punctuality got a new sample: (3*2 + 3) / 3
			assert.InDelta(t, 3.0, rating.Breakdown["punctuality"].Average, 1e-9)
			assert.Equal(t, 3, rating.Breakdown["punctuality"].Count)
			// politeness was skipped and stays exactly as it was
			assert.InDelta(t, 5.0, rating.Breakdown["politeness"].Average, 1e-9)
			assert.Equal(t, 1, rating.Breakdown["politeness"].Count)
			return true, nil
		})

	err := uc.RecordRating(context.Background(), fulfillerID, 1, map[string]float64{"punctuality": 3})

	assert.NoError(t, err)
}

func TestRecordRating_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewFulfillerUC(testConfig(), mocks.NewMockFulfillerRepo(ctrl), mocks.NewMockFulfillerGW(ctrl))

	assert.Equal(t, errs.KindValidation,
		errs.KindOf(uc.RecordRating(context.Background(), uuid.New(), 0.5, nil)))
	assert.Equal(t, errs.KindValidation,
		errs.KindOf(uc.RecordRating(context.Background(), uuid.New(), 5.5, nil)))
	assert.Equal(t, errs.KindValidation,
		errs.KindOf(uc.RecordRating(context.Background(), uuid.New(), 4,
			map[string]float64{"punctuality": 6})))
}

func TestRecordRating_RetriesLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()

	// First attempt loses the optimistic-concurrency race, second wins
	// against the refreshed snapshot.
	mockRepo.EXPECT().GetRating(gomock.Any(), fulfillerID).Return(&models.Rating{
		Average: 4.0, TotalRatings: 1, Breakdown: models.RatingBreakdown{},
	}, nil)
	mockRepo.EXPECT().UpdateRatingIf(gomock.Any(), fulfillerID, 1, gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetRating(gomock.Any(), fulfillerID).Return(&models.Rating{
		Average: 4.5, TotalRatings: 2, Breakdown: models.RatingBreakdown{},
	}, nil)
	mockRepo.EXPECT().UpdateRatingIf(gomock.Any(), fulfillerID, 2, gomock.Any()).Return(true, nil)

	err := uc.RecordRating(context.Background(), fulfillerID, 3, nil)

	assert.NoError(t, err)
}

func TestRecordRating_ExhaustedRetriesIsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetRating(gomock.Any(), fulfillerID).Return(&models.Rating{
		Breakdown: models.RatingBreakdown{},
	}, nil).AnyTimes()
	mockRepo.EXPECT().UpdateRatingIf(gomock.Any(), fulfillerID, 0, gomock.Any()).
		Return(false, nil).AnyTimes()

	err := uc.RecordRating(context.Background(), fulfillerID, 4, nil)

	assert.Equal(t, errs.KindUnavailable, errs.KindOf(err))
}

func TestRecordRating_UnknownFulfiller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockFulfillerRepo(ctrl)
	uc := NewFulfillerUC(testConfig(), mockRepo, mocks.NewMockFulfillerGW(ctrl))

	fulfillerID := uuid.New()
	mockRepo.EXPECT().GetRating(gomock.Any(), fulfillerID).Return(nil, nil)

	err := uc.RecordRating(context.Background(), fulfillerID, 4, nil)

	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
