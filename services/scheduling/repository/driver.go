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

// DriverRepo provides driver data access backed by PostgreSQL
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetDriver retrieves a driver by id. Returns nil when the driver does not exist.
func (r *DriverRepo) GetDriver(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID) (*models.Driver, error) {
	query := `
		SELECT id, name, is_active, is_suspended, license_expiry_date, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driver models.Driver
	err := sqlx.GetContext(ctx, ext, &driver, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// FindEligibleDrivers returns drivers satisfying the eligibility predicate at
// the given instant, excluding the supplied ids, ordered by id ascending for
// stable tie-breaking
func (r *DriverRepo) FindEligibleDrivers(ctx context.Context, ext sqlx.ExtContext, now time.Time, excludeIDs []uuid.UUID) ([]*models.Driver, error) {
	query := `
		SELECT id, name, is_active, is_suspended, license_expiry_date, created_at, updated_at
		FROM drivers
		WHERE is_active = TRUE
		  AND is_suspended = FALSE
		  AND (license_expiry_date IS NULL OR license_expiry_date > ?)
	`
	args := []interface{}{now}

	if len(excludeIDs) > 0 {
		query += ` AND id NOT IN (?)`
		args = append(args, excludeIDs)
	}
	query += ` ORDER BY id`

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build eligible drivers query: %w", err)
	}
	query = ext.Rebind(query)

	var drivers []*models.Driver
	if err := sqlx.SelectContext(ctx, ext, &drivers, query, inArgs...); err != nil {
		return nil, fmt.Errorf("failed to find eligible drivers: %w", err)
	}
	return drivers, nil
}

// CountOpenAssignments counts each given driver's assignments to trips that
// are neither cancelled nor completed. Drivers without assignments are absent
// from the result map.
func (r *DriverRepo) CountOpenAssignments(ctx context.Context, ext sqlx.ExtContext, driverIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(driverIDs))
	if len(driverIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT s.driver_id, COUNT(*) AS open_count
		FROM trip_schedules s
		JOIN trips t ON t.id = s.trip_id
		WHERE t.status NOT IN (?, ?)
		  AND s.driver_id IN (?)
		GROUP BY s.driver_id
	`, models.TripStatusCancelled, models.TripStatusCompleted, driverIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build assignment count query: %w", err)
	}
	query = ext.Rebind(query)

	rows, err := ext.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count open assignments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var driverID uuid.UUID
		var count int
		if err := rows.Scan(&driverID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan assignment count: %w", err)
		}
		counts[driverID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assignment counts: %w", err)
	}
	return counts, nil
}
