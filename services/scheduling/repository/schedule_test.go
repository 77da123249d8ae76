package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func scheduleRows(schedules ...*models.TripSchedule) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "trip_id", "driver_id", "assignment_mode", "assigned_at", "assigned_by",
	})
	for _, s := range schedules {
		rows.AddRow(s.ID, s.TripID, s.DriverID, s.AssignmentMode, s.AssignedAt, s.AssignedBy)
	}
	return rows
}

func TestGetScheduleByTrip_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	schedule := &models.TripSchedule{
		ID:             uuid.New(),
		TripID:         uuid.New(),
		DriverID:       uuid.New(),
		AssignmentMode: models.AssignmentModeAuto,
		AssignedAt:     time.Now().UTC(),
	}

	mock.ExpectQuery(`SELECT (.+) FROM trip_schedules WHERE trip_id = \$1`).
		WithArgs(schedule.TripID).
		WillReturnRows(scheduleRows(schedule))

	got, err := repo.GetScheduleByTrip(context.Background(), db, schedule.TripID)
	assert.NoError(t, err)
	assert.Equal(t, schedule.DriverID, got.DriverID)
	assert.Equal(t, models.AssignmentModeAuto, got.AssignmentMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScheduleByTrip_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM trip_schedules WHERE trip_id = \$1`).
		WithArgs(tripID).
		WillReturnRows(scheduleRows())

	got, err := repo.GetScheduleByTrip(context.Background(), db, tripID)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSchedule(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	actor := uuid.New()
	schedule := &models.TripSchedule{
		ID:             uuid.New(),
		TripID:         uuid.New(),
		DriverID:       uuid.New(),
		AssignmentMode: models.AssignmentModeManual,
		AssignedAt:     time.Now().UTC(),
		AssignedBy:     &actor,
	}

	mock.ExpectExec(`INSERT INTO trip_schedules (.+) ON CONFLICT \(trip_id\) DO UPDATE`).
		WithArgs(schedule.ID, schedule.TripID, schedule.DriverID,
			schedule.AssignmentMode, schedule.AssignedAt, actor).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertSchedule(context.Background(), db, schedule)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteScheduleByTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectExec(`DELETE FROM trip_schedules WHERE trip_id = \$1`).
		WithArgs(tripID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteScheduleByTrip(context.Background(), db, tripID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCommitmentsBetween(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	driverID := uuid.New()
	tripID := uuid.New()

	mock.ExpectQuery(`SELECT s\.trip_id, s\.driver_id, t\.start_time, r\.duration_hours, t\.status`).
		WithArgs(models.TripStatusCancelled, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "driver_id", "start_time", "duration_hours", "status"}).
			AddRow(tripID, driverID, from.Add(8*time.Hour), 2.5, models.TripStatusScheduled))

	commitments, err := repo.FindCommitmentsBetween(context.Background(), db, from, to)
	assert.NoError(t, err)
	assert.Len(t, commitments, 1)
	assert.Equal(t, driverID, commitments[0].DriverID)
	assert.Equal(t, 2.5, commitments[0].DurationHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDriverCommitmentsBetween(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	driverID := uuid.New()

	mock.ExpectQuery(`AND s\.driver_id = \$4`).
		WithArgs(models.TripStatusCancelled, from, to, driverID).
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "driver_id", "start_time", "duration_hours", "status"}))

	commitments, err := repo.FindDriverCommitmentsBetween(context.Background(), db, driverID, from, to)
	assert.NoError(t, err)
	assert.Empty(t, commitments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOutboundAssignment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	returnTripID := uuid.New()
	schedule := &models.TripSchedule{
		ID:             uuid.New(),
		TripID:         uuid.New(),
		DriverID:       uuid.New(),
		AssignmentMode: models.AssignmentModeAuto,
		AssignedAt:     time.Now().UTC(),
	}

	mock.ExpectQuery(`WHERE t\.return_trip_id = \$1`).
		WithArgs(returnTripID, models.TripStatusCancelled).
		WillReturnRows(scheduleRows(schedule))

	got, err := repo.FindOutboundAssignment(context.Background(), db, returnTripID)
	assert.NoError(t, err)
	assert.Equal(t, schedule.DriverID, got.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOutboundAssignment_NotReturnLeg(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewScheduleRepository(&models.Config{}, db)

	tripID := uuid.New()
	mock.ExpectQuery(`WHERE t\.return_trip_id = \$1`).
		WithArgs(tripID, models.TripStatusCancelled).
		WillReturnRows(scheduleRows())

	got, err := repo.FindOutboundAssignment(context.Background(), db, tripID)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
