package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling/mocks"
	"github.com/stretchr/testify/assert"
)

func pendingTrip(start time.Time) *models.Trip {
	return &models.Trip{
		ID:        uuid.New(),
		RouteID:   uuid.New(),
		VehicleID: uuid.New(),
		StartTime: start,
		Status:    models.TripStatusPending,
	}
}

func routeOfHours(id uuid.UUID, hours float64) *models.Route {
	return &models.Route{ID: id, Name: "Jakarta - Bandung", DurationHours: hours}
}

func TestAvailability_PicksFreeDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(schedulerConfig(), nil, mockTrips, mockDrivers, mockSchedules)

	trip := pendingTrip(time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))
	busyDriver := uuid.New()
	freeDriver := uuid.New()

	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), trip.ID, false).Return(trip, nil)
	mockTrips.EXPECT().GetRoute(gomock.Any(), gomock.Any(), trip.RouteID).
		Return(routeOfHours(trip.RouteID, 2), nil)

	// The busy driver's commitment overlaps the trip's occupied interval
	mockSchedules.EXPECT().FindCommitmentsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.DriverCommitment{
			{
				TripID:        uuid.New(),
				DriverID:      busyDriver,
				StartTime:     time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				DurationHours: 2,
				Status:        models.TripStatusScheduled,
			},
		}, nil)
	mockSchedules.EXPECT().FindOutboundAssignment(gomock.Any(), gomock.Any(), trip.ID).Return(nil, nil)

	mockDrivers.EXPECT().FindEligibleDrivers(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{busyDriver}).
		Return([]*models.Driver{{ID: freeDriver, IsActive: true}}, nil)

	driverID, found, err := strategy.SelectDriver(context.Background(), trip.ID)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, freeDriver, driverID)
}

func TestAvailability_BackToBackWithBufferConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(schedulerConfig(), nil, mockTrips, mockDrivers, mockSchedules)

	// Trip at 10:00; the driver's earlier trip runs 08:00-10:00 plus a 30
	// minute turnaround, so 10:00 still collides
	trip := pendingTrip(time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC))
	busyDriver := uuid.New()

	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), trip.ID, false).Return(trip, nil)
	mockTrips.EXPECT().GetRoute(gomock.Any(), gomock.Any(), trip.RouteID).
		Return(routeOfHours(trip.RouteID, 2), nil)
	mockSchedules.EXPECT().FindCommitmentsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.DriverCommitment{
			{
				TripID:        uuid.New(),
				DriverID:      busyDriver,
				StartTime:     time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
				DurationHours: 2,
				Status:        models.TripStatusScheduled,
			},
		}, nil)
	mockSchedules.EXPECT().FindOutboundAssignment(gomock.Any(), gomock.Any(), trip.ID).Return(nil, nil)
	mockDrivers.EXPECT().FindEligibleDrivers(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{busyDriver}).
		Return(nil, nil)

	_, found, err := strategy.SelectDriver(context.Background(), trip.ID)

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestAvailability_ContinuityPrefersOutboundDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(schedulerConfig(), nil, mockTrips, mockDrivers, mockSchedules)

	returnTrip := pendingTrip(time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC))
	outboundDriver := uuid.New()

	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), returnTrip.ID, false).Return(returnTrip, nil)
	mockTrips.EXPECT().GetRoute(gomock.Any(), gomock.Any(), returnTrip.RouteID).
		Return(routeOfHours(returnTrip.RouteID, 2), nil)
	mockSchedules.EXPECT().FindCommitmentsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockSchedules.EXPECT().FindOutboundAssignment(gomock.Any(), gomock.Any(), returnTrip.ID).
		Return(&models.TripSchedule{DriverID: outboundDriver}, nil)
	mockDrivers.EXPECT().GetDriver(gomock.Any(), gomock.Any(), outboundDriver).
		Return(&models.Driver{ID: outboundDriver, IsActive: true}, nil)

	driverID, found, err := strategy.SelectDriver(context.Background(), returnTrip.ID)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, outboundDriver, driverID)
}

func TestAvailability_ContinuitySkippedWhenOutboundDriverBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(schedulerConfig(), nil, mockTrips, mockDrivers, mockSchedules)

	returnTrip := pendingTrip(time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC))
	outboundDriver := uuid.New()
	otherDriver := uuid.New()

	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), returnTrip.ID, false).Return(returnTrip, nil)
	mockTrips.EXPECT().GetRoute(gomock.Any(), gomock.Any(), returnTrip.RouteID).
		Return(routeOfHours(returnTrip.RouteID, 2), nil)

	// The outbound driver has another commitment straddling the return leg
	mockSchedules.EXPECT().FindCommitmentsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.DriverCommitment{
			{
				TripID:        uuid.New(),
				DriverID:      outboundDriver,
				StartTime:     time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
				DurationHours: 3,
				Status:        models.TripStatusScheduled,
			},
		}, nil)
	mockSchedules.EXPECT().FindOutboundAssignment(gomock.Any(), gomock.Any(), returnTrip.ID).
		Return(&models.TripSchedule{DriverID: outboundDriver}, nil)
	mockDrivers.EXPECT().FindEligibleDrivers(gomock.Any(), gomock.Any(), gomock.Any(), []uuid.UUID{outboundDriver}).
		Return([]*models.Driver{{ID: otherDriver, IsActive: true}}, nil)

	driverID, found, err := strategy.SelectDriver(context.Background(), returnTrip.ID)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, otherDriver, driverID)
}

func TestAvailability_WindowCoversLongRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := schedulerConfig()
	cfg.Scheduler.OverlapWindowHours = 4

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(cfg, nil, mockTrips, mockDrivers, mockSchedules)

	// An 8 hour route outlasts the 4 hour window; the scan must widen by the
	// occupied span so a long prior commitment is still seen
	trip := pendingTrip(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))

	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), trip.ID, false).Return(trip, nil)
	mockTrips.EXPECT().GetRoute(gomock.Any(), gomock.Any(), trip.RouteID).
		Return(routeOfHours(trip.RouteID, 8), nil)

	var scanFrom, scanTo time.Time
	mockSchedules.EXPECT().FindCommitmentsBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, from, to time.Time) ([]*models.DriverCommitment, error) {
			scanFrom, scanTo = from, to
			return nil, nil
		})
	mockSchedules.EXPECT().FindOutboundAssignment(gomock.Any(), gomock.Any(), trip.ID).Return(nil, nil)
	mockDrivers.EXPECT().FindEligibleDrivers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Len(0)).
		Return(nil, nil)

	_, found, err := strategy.SelectDriver(context.Background(), trip.ID)
	assert.NoError(t, err)
	assert.False(t, found)

	// occupied = 8h route + 30m buffer; from = start - (4h window + occupied + 30m buffer)
	occEnd := trip.StartTime.Add(8*time.Hour + 30*time.Minute)
	assert.Equal(t, trip.StartTime.Add(-(4*time.Hour + 8*time.Hour + 30*time.Minute + 30*time.Minute)), scanFrom)
	assert.Equal(t, occEnd.Add(4*time.Hour), scanTo)
}

func TestAvailability_TripNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(schedulerConfig(), nil, mockTrips, mockDrivers, mockSchedules)

	tripID := uuid.New()
	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), tripID, false).Return(nil, nil)

	_, _, err := strategy.SelectDriver(context.Background(), tripID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestAvailability_RejectsTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTrips := mocks.NewMockTripRepo(ctrl)
	mockDrivers := mocks.NewMockDriverRepo(ctrl)
	mockSchedules := mocks.NewMockScheduleRepo(ctrl)
	strategy := NewAvailabilityStrategy(schedulerConfig(), nil, mockTrips, mockDrivers, mockSchedules)

	tpl := dailyTemplate(8)
	mockTrips.EXPECT().GetTrip(gomock.Any(), gomock.Any(), tpl.ID, false).Return(tpl, nil)

	_, _, err := strategy.SelectDriver(context.Background(), tpl.ID)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
}
