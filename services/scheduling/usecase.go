package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/models"
)

// GeneratorUC expands active trip templates into dated instances
type GeneratorUC interface {
	// Generate materializes instances for the target calendar date inside a
	// single transaction and returns the created ids only after commit
	Generate(ctx context.Context, targetDate time.Time) ([]uuid.UUID, error)
}

// AssignmentStrategy selects a driver for a trip instance. The boolean result
// is false when no eligible driver is available, which is a valid outcome,
// not an error; a missing trip is a not-found error.
type AssignmentStrategy interface {
	SelectDriver(ctx context.Context, tripID uuid.UUID) (uuid.UUID, bool, error)
}

// AssignmentUC performs driver assignment with the trip row locked for
// exclusive update
type AssignmentUC interface {
	// Assign creates or (in manual mode) replaces the trip's schedule and
	// moves the trip to SCHEDULED in the same transaction. Auto mode refuses
	// to overwrite an existing schedule.
	Assign(ctx context.Context, tripID, driverID uuid.UUID, mode models.AssignmentMode, actorID *uuid.UUID) (*models.TripSchedule, error)
	// AutoAssign runs the configured strategy and assigns its pick. A nil
	// schedule with nil error means no eligible driver was available and the
	// trip stays PENDING.
	AutoAssign(ctx context.Context, tripID uuid.UUID) (*models.TripSchedule, error)
	// Unassign deletes the trip's schedule and reverts the trip to PENDING
	Unassign(ctx context.Context, tripID uuid.UUID) error
}

// LifecycleUC advances trip instances through the status state machine as
// wall-clock time passes
type LifecycleUC interface {
	Sweep(ctx context.Context, now time.Time) (models.SweepResult, error)
}
