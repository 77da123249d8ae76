package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rahmanda/transbus/internal/pkg/models"
)

// Tx is the transaction handle passed through repository calls. *sqlx.Tx
// satisfies it; tests substitute a fake.
type Tx interface {
	sqlx.ExtContext
	Commit() error
	Rollback() error
}

// TripRepo defines trip and route data access. Methods take an
// sqlx.ExtContext so callers decide whether they run on the pool or inside a
// transaction; the forUpdate flag makes the row-locking contract visible at
// the call site.
type TripRepo interface {
	BeginTx(ctx context.Context) (Tx, error)

	GetTrip(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID, forUpdate bool) (*models.Trip, error)
	GetRoute(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID) (*models.Route, error)

	// FindTemplatesActiveOn returns non-cancelled templates whose recurrence
	// has not ended before the given date
	FindTemplatesActiveOn(ctx context.Context, ext sqlx.ExtContext, date time.Time) ([]*models.Trip, error)
	// HasInstanceOnDate reports whether the template was already expanded
	// into an instance for the given calendar date
	HasInstanceOnDate(ctx context.Context, ext sqlx.ExtContext, templateID uuid.UUID, date time.Time) (bool, error)
	CreateTripInstance(ctx context.Context, ext sqlx.ExtContext, trip *models.Trip) error

	UpdateTripStatus(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID, status models.TripStatus) error
	// BulkUpdateTripStatus moves every given trip from one status to another.
	// The from-status rides in the UPDATE predicate so a trip that changed
	// state since it was selected is left untouched.
	BulkUpdateTripStatus(ctx context.Context, ext sqlx.ExtContext, ids []uuid.UUID, from, to models.TripStatus) error

	// Lifecycle sweep selectors; predicates are status-gated so re-running a
	// tick is a no-op
	FindDueForDeparture(ctx context.Context, ext sqlx.ExtContext, now time.Time) ([]uuid.UUID, error)
	FindDueForCompletion(ctx context.Context, ext sqlx.ExtContext, now time.Time) ([]uuid.UUID, error)
	FindExpiredPending(ctx context.Context, ext sqlx.ExtContext, now time.Time) ([]uuid.UUID, error)
}

// DriverRepo defines driver data access
type DriverRepo interface {
	GetDriver(ctx context.Context, ext sqlx.ExtContext, id uuid.UUID) (*models.Driver, error)
	// FindEligibleDrivers returns active, unsuspended drivers with a valid
	// license at the given instant, excluding the supplied ids, ordered by id
	FindEligibleDrivers(ctx context.Context, ext sqlx.ExtContext, now time.Time, excludeIDs []uuid.UUID) ([]*models.Driver, error)
	// CountOpenAssignments counts non-cancelled, non-completed assignments
	// per driver for the given driver ids
	CountOpenAssignments(ctx context.Context, ext sqlx.ExtContext, driverIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// ScheduleRepo defines driver assignment data access
type ScheduleRepo interface {
	GetScheduleByTrip(ctx context.Context, ext sqlx.ExtContext, tripID uuid.UUID) (*models.TripSchedule, error)
	UpsertSchedule(ctx context.Context, ext sqlx.ExtContext, schedule *models.TripSchedule) error
	DeleteScheduleByTrip(ctx context.Context, ext sqlx.ExtContext, tripID uuid.UUID) error

	// FindCommitmentsBetween returns every assignment whose trip's occupied
	// interval can intersect [from, to), joined with trip timing, for
	// non-cancelled trips
	FindCommitmentsBetween(ctx context.Context, ext sqlx.ExtContext, from, to time.Time) ([]*models.DriverCommitment, error)
	// FindDriverCommitmentsBetween is FindCommitmentsBetween restricted to
	// one driver
	FindDriverCommitmentsBetween(ctx context.Context, ext sqlx.ExtContext, driverID uuid.UUID, from, to time.Time) ([]*models.DriverCommitment, error)
	// FindOutboundAssignment returns the assignment of the trip whose
	// return_trip_id references the given trip, or nil when the trip is not
	// a return leg or the outbound leg is unassigned
	FindOutboundAssignment(ctx context.Context, ext sqlx.ExtContext, returnTripID uuid.UUID) (*models.TripSchedule, error)
}
