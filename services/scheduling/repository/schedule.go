package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rahmanda/transbus/internal/pkg/models"
)

const scheduleColumns = `id, trip_id, driver_id, assignment_mode, assigned_at, assigned_by`

// ScheduleRepo provides driver assignment data access backed by PostgreSQL
type ScheduleRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(cfg *models.Config, db *sqlx.DB) *ScheduleRepo {
	return &ScheduleRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetScheduleByTrip retrieves the assignment of a trip. Returns nil when the
// trip has no assignment.
func (r *ScheduleRepo) GetScheduleByTrip(ctx context.Context, ext sqlx.ExtContext, tripID uuid.UUID) (*models.TripSchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM trip_schedules WHERE trip_id = $1`

	var schedule models.TripSchedule
	err := sqlx.GetContext(ctx, ext, &schedule, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &schedule, nil
}

// UpsertSchedule creates the trip's assignment or replaces it in place.
// trip_id carries a unique constraint, so at most one row exists per trip.
func (r *ScheduleRepo) UpsertSchedule(ctx context.Context, ext sqlx.ExtContext, schedule *models.TripSchedule) error {
	query := `
		INSERT INTO trip_schedules (id, trip_id, driver_id, assignment_mode, assigned_at, assigned_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (trip_id) DO UPDATE SET
			driver_id = EXCLUDED.driver_id,
			assignment_mode = EXCLUDED.assignment_mode,
			assigned_at = EXCLUDED.assigned_at,
			assigned_by = EXCLUDED.assigned_by
	`

	_, err := ext.ExecContext(
		ctx,
		query,
		schedule.ID,
		schedule.TripID,
		schedule.DriverID,
		schedule.AssignmentMode,
		schedule.AssignedAt,
		schedule.AssignedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return nil
}

// DeleteScheduleByTrip removes the trip's assignment
func (r *ScheduleRepo) DeleteScheduleByTrip(ctx context.Context, ext sqlx.ExtContext, tripID uuid.UUID) error {
	query := `DELETE FROM trip_schedules WHERE trip_id = $1`

	_, err := ext.ExecContext(ctx, query, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

const commitmentQuery = `
	SELECT s.trip_id, s.driver_id, t.start_time, r.duration_hours, t.status
	FROM trip_schedules s
	JOIN trips t ON t.id = s.trip_id
	JOIN routes r ON r.id = t.route_id
	WHERE t.status <> $1
	  AND t.start_time < $3
	  AND t.start_time + make_interval(secs => r.duration_hours * 3600) > $2
`

// FindCommitmentsBetween returns all assignments whose trip's travel interval
// intersects [from, to), for non-cancelled trips. The turnaround buffer is
// not applied here; callers fold it into the bounds and the overlap test.
func (r *ScheduleRepo) FindCommitmentsBetween(ctx context.Context, ext sqlx.ExtContext, from, to time.Time) ([]*models.DriverCommitment, error) {
	var commitments []*models.DriverCommitment
	err := sqlx.SelectContext(ctx, ext, &commitments, commitmentQuery+` ORDER BY s.driver_id, t.start_time`,
		models.TripStatusCancelled, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find commitments: %w", err)
	}
	return commitments, nil
}

// FindDriverCommitmentsBetween restricts the commitment search to one driver
func (r *ScheduleRepo) FindDriverCommitmentsBetween(ctx context.Context, ext sqlx.ExtContext, driverID uuid.UUID, from, to time.Time) ([]*models.DriverCommitment, error) {
	var commitments []*models.DriverCommitment
	err := sqlx.SelectContext(ctx, ext, &commitments, commitmentQuery+` AND s.driver_id = $4 ORDER BY t.start_time`,
		models.TripStatusCancelled, from, to, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to find driver commitments: %w", err)
	}
	return commitments, nil
}

// FindOutboundAssignment returns the assignment of the trip whose
// return_trip_id references the given trip. Returns nil when the trip is not
// a return leg or the outbound leg has no driver.
func (r *ScheduleRepo) FindOutboundAssignment(ctx context.Context, ext sqlx.ExtContext, returnTripID uuid.UUID) (*models.TripSchedule, error) {
	query := `
		SELECT s.id, s.trip_id, s.driver_id, s.assignment_mode, s.assigned_at, s.assigned_by
		FROM trip_schedules s
		JOIN trips t ON t.id = s.trip_id
		WHERE t.return_trip_id = $1
		  AND t.is_template = FALSE
		  AND t.status <> $2
		LIMIT 1
	`

	var schedule models.TripSchedule
	err := sqlx.GetContext(ctx, ext, &schedule, query, returnTripID, models.TripStatusCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find outbound assignment: %w", err)
	}
	return &schedule, nil
}
