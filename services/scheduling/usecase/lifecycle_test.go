package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling/mocks"
	"github.com/stretchr/testify/assert"
)

func TestSweep_AppliesAllTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockSchedulingGW(ctrl)
	uc := NewLifecycleUC(mockRepo, mockGW)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	departing := []uuid.UUID{uuid.New()}
	completing := []uuid.UUID{uuid.New(), uuid.New()}
	expiring := []uuid.UUID{uuid.New()}
	tx := &mocks.FakeTx{}

	mockRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
	mockRepo.EXPECT().FindDueForDeparture(gomock.Any(), tx, now).Return(departing, nil)
	mockRepo.EXPECT().FindDueForCompletion(gomock.Any(), tx, now).Return(completing, nil)
	mockRepo.EXPECT().FindExpiredPending(gomock.Any(), tx, now).Return(expiring, nil)
	mockRepo.EXPECT().BulkUpdateTripStatus(gomock.Any(), tx, departing, models.TripStatusScheduled, models.TripStatusDeparted).Return(nil)
	mockRepo.EXPECT().BulkUpdateTripStatus(gomock.Any(), tx, completing, models.TripStatusDeparted, models.TripStatusCompleted).Return(nil)
	mockRepo.EXPECT().BulkUpdateTripStatus(gomock.Any(), tx, expiring, models.TripStatusPending, models.TripStatusCancelled).Return(nil)

	mockGW.EXPECT().PublishTripStatus(gomock.Any(), models.TripStatusEvent{
		Status: models.TripStatusDeparted, TripIDs: departing, SweptAt: now,
	}).Return(nil)
	mockGW.EXPECT().PublishTripStatus(gomock.Any(), models.TripStatusEvent{
		Status: models.TripStatusCompleted, TripIDs: completing, SweptAt: now,
	}).Return(nil)
	mockGW.EXPECT().PublishTripStatus(gomock.Any(), models.TripStatusEvent{
		Status: models.TripStatusCancelled, TripIDs: expiring, SweptAt: now,
	}).Return(nil)

	result, err := uc.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.True(t, tx.Committed)
	assert.Equal(t, departing, result.Departed)
	assert.Equal(t, completing, result.Completed)
	assert.Equal(t, expiring, result.Cancelled)
	assert.Equal(t, 4, result.Total())
}

func TestSweep_NoDueTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockSchedulingGW(ctrl)
	uc := NewLifecycleUC(mockRepo, mockGW)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	tx := &mocks.FakeTx{}

	mockRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
	mockRepo.EXPECT().FindDueForDeparture(gomock.Any(), tx, now).Return(nil, nil)
	mockRepo.EXPECT().FindDueForCompletion(gomock.Any(), tx, now).Return(nil, nil)
	mockRepo.EXPECT().FindExpiredPending(gomock.Any(), tx, now).Return(nil, nil)
	mockRepo.EXPECT().BulkUpdateTripStatus(gomock.Any(), tx, nil, models.TripStatusScheduled, models.TripStatusDeparted).Return(nil)
	mockRepo.EXPECT().BulkUpdateTripStatus(gomock.Any(), tx, nil, models.TripStatusDeparted, models.TripStatusCompleted).Return(nil)
	mockRepo.EXPECT().BulkUpdateTripStatus(gomock.Any(), tx, nil, models.TripStatusPending, models.TripStatusCancelled).Return(nil)
	// No transitions, no broadcasts

	result, err := uc.Sweep(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Total())
	assert.True(t, tx.Committed)
}

func TestSweep_RollsBackOnSelectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockSchedulingGW(ctrl)
	uc := NewLifecycleUC(mockRepo, mockGW)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	tx := &mocks.FakeTx{}

	mockRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
	mockRepo.EXPECT().FindDueForDeparture(gomock.Any(), tx, now).
		Return(nil, errors.New("connection reset"))

	_, err := uc.Sweep(context.Background(), now)

	assert.Error(t, err)
	assert.False(t, tx.Committed)
	assert.True(t, tx.RolledBack)
}
