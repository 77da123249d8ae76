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
	"github.com/rahmanda/transbus/services/scheduling"
)

const tripColumns = `
	id, route_id, vehicle_id, start_time, end_time,
	is_template, template_trip_id, return_trip_id, is_round_trip,
	repeat_frequency, repeat_end_date, status, created_at, updated_at
`

// TripRepo provides trip and route data access backed by PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// BeginTx opens a database transaction
func (r *TripRepo) BeginTx(ctx context.Context) (scheduling.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetTrip retrieves a trip by id, optionally locking the row for exclusive
// update for the duration of the surrounding transaction. Returns nil when
// the trip does not exist.
func (r *TripRepo) GetTrip(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID, forUpdate bool) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var trip models.Trip
	err := sqlx.GetContext(ctx, ext, &trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// GetRoute retrieves a route by id. Returns nil when the route does not exist.
func (r *TripRepo) GetRoute(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID) (*models.Route, error) {
	query := `
		SELECT id, name, duration_hours, distance_km, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route models.Route
	err := sqlx.GetContext(ctx, ext, &route, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &route, nil
}

// FindTemplatesActiveOn returns all non-cancelled templates whose recurrence
// bound has not passed before the given date
func (r *TripRepo) FindTemplatesActiveOn(ctx context.Context, ext sqlx.ExtContext, date time.Time) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE is_template = TRUE
		  AND status <> $1
		  AND (repeat_end_date IS NULL OR repeat_end_date >= $2)
		ORDER BY start_time, id
	`

	var templates []*models.Trip
	err := sqlx.SelectContext(ctx, ext, &templates, query, models.TripStatusCancelled, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find active templates: %w", err)
	}
	return templates, nil
}

// HasInstanceOnDate reports whether the template already has an instance
// starting within the given calendar date
func (r *TripRepo) HasInstanceOnDate(ctx context.Context, ext sqlx.ExtContext, templateID uuid.UUID, date time.Time) (bool, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM trips
			WHERE template_trip_id = $1
			  AND is_template = FALSE
			  AND start_time >= $2
			  AND start_time < $3
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, ext, &exists, query, templateID, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("failed to check existing instance: %w", err)
	}
	return exists, nil
}

// CreateTripInstance inserts a new trip instance
func (r *TripRepo) CreateTripInstance(ctx context.Context, ext sqlx.ExtContext, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, route_id, vehicle_id, start_time, end_time,
			is_template, template_trip_id, return_trip_id, is_round_trip,
			repeat_frequency, repeat_end_date, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := ext.ExecContext(
		ctx,
		query,
		trip.ID,
		trip.RouteID,
		trip.VehicleID,
		trip.StartTime,
		trip.EndTime,
		trip.IsTemplate,
		trip.TemplateTripID,
		trip.ReturnTripID,
		trip.IsRoundTrip,
		trip.RepeatFrequency,
		trip.RepeatEndDate,
		trip.Status,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trip instance: %w", err)
	}
	return nil
}

// UpdateTripStatus sets the status of a single trip
func (r *TripRepo) UpdateTripStatus(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID, status models.TripStatus) error {
	query := `UPDATE trips SET status = $2, updated_at = NOW() WHERE id = $1`

	_, err := ext.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	return nil
}

// BulkUpdateTripStatus moves all given trips from one status to another in
// one statement. The from-status predicate keeps the transition atomic: a
// trip rewritten by a concurrent assignment between select and update no
// longer matches and is skipped.
func (r *TripRepo) BulkUpdateTripStatus(ctx context.Context, ext sqlx.ExtContext, ids []uuid.UUID, from, to models.TripStatus) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE trips SET status = ?, updated_at = NOW() WHERE id IN (?) AND status = ?`, to, ids, from)
	if err != nil {
		return fmt.Errorf("failed to build bulk status update: %w", err)
	}
	query = ext.Rebind(query)

	_, err = ext.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to bulk update trip status: %w", err)
	}
	return nil
}

// FindDueForDeparture returns SCHEDULED instances whose start time has passed
func (r *TripRepo) FindDueForDeparture(ctx context.Context, ext sqlx.ExtContext, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM trips
		WHERE is_template = FALSE
		  AND status = $1
		  AND start_time <= $2
		ORDER BY id
	`
	return r.selectIDs(ctx, ext, query, models.TripStatusScheduled, now)
}

// FindDueForCompletion returns DEPARTED instances whose route duration has
// elapsed since departure
func (r *TripRepo) FindDueForCompletion(ctx context.Context, ext sqlx.ExtContext, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT t.id FROM trips t
		JOIN routes r ON r.id = t.route_id
		WHERE t.is_template = FALSE
		  AND t.status = $1
		  AND t.start_time + make_interval(secs => r.duration_hours * 3600) <= $2
		ORDER BY t.id
	`
	return r.selectIDs(ctx, ext, query, models.TripStatusDeparted, now)
}

// FindExpiredPending returns PENDING instances whose start time has passed
// without ever getting a driver
func (r *TripRepo) FindExpiredPending(ctx context.Context, ext sqlx.ExtContext, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM trips
		WHERE is_template = FALSE
		  AND status = $1
		  AND start_time <= $2
		ORDER BY id
	`
	return r.selectIDs(ctx, ext, query, models.TripStatusPending, now)
}

func (r *TripRepo) selectIDs(ctx context.Context, ext sqlx.ExtContext, query string, args ...interface{}) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := sqlx.SelectContext(ctx, ext, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select trip ids: %w", err)
	}
	return ids, nil
}
