package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling"
)

// assignmentUC implements the scheduling.AssignmentUC interface
type assignmentUC struct {
	cfg          *models.Config
	tripRepo     scheduling.TripRepo
	driverRepo   scheduling.DriverRepo
	scheduleRepo scheduling.ScheduleRepo
	strategy     scheduling.AssignmentStrategy
	gw           scheduling.SchedulingGW
}

// NewAssignmentUC creates a new assignment use case
func NewAssignmentUC(
	cfg *models.Config,
	tripRepo scheduling.TripRepo,
	driverRepo scheduling.DriverRepo,
	scheduleRepo scheduling.ScheduleRepo,
	strategy scheduling.AssignmentStrategy,
	gw scheduling.SchedulingGW,
) scheduling.AssignmentUC {
	return &assignmentUC{
		cfg:          cfg,
		tripRepo:     tripRepo,
		driverRepo:   driverRepo,
		scheduleRepo: scheduleRepo,
		strategy:     strategy,
		gw:           gw,
	}
}

// Assign creates or replaces the trip's driver assignment. The trip row is
// locked for exclusive update for the whole transaction so two concurrent
// calls cannot both pass the existing-schedule check.
func (uc *assignmentUC) Assign(ctx context.Context, tripID, driverID uuid.UUID, mode models.AssignmentMode, actorID *uuid.UUID) (*models.TripSchedule, error) {
	tx, err := uc.tripRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	trip, err := uc.tripRepo.GetTrip(ctx, tx, tripID, true)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, apperror.Newf(apperror.KindNotFound, "trip %s not found", tripID)
	}
	if trip.IsTemplate {
		return nil, apperror.Newf(apperror.KindInvalidState, "trip %s is a template and cannot be assigned", tripID)
	}
	if trip.Status.Terminal() {
		return nil, apperror.Newf(apperror.KindInvalidState, "trip %s is %s", tripID, trip.Status)
	}

	existing, err := uc.scheduleRepo.GetScheduleByTrip(ctx, tx, tripID)
	if err != nil {
		return nil, err
	}
	// Only manual reassignment may overwrite an existing assignment
	if mode == models.AssignmentModeAuto && existing != nil {
		return nil, apperror.Newf(apperror.KindConflict, "trip %s already has an assignment", tripID)
	}

	now := time.Now().UTC()

	driver, err := uc.driverRepo.GetDriver(ctx, tx, driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperror.Newf(apperror.KindNotFound, "driver %s not found", driverID)
	}
	if !driver.EligibleAt(now) {
		return nil, apperror.Newf(apperror.KindInvalidState, "driver %s is not eligible for assignment", driverID)
	}

	if err := uc.checkDriverConflicts(ctx, tx, trip, driverID); err != nil {
		return nil, err
	}

	schedule := &models.TripSchedule{
		ID:             uuid.New(),
		TripID:         tripID,
		DriverID:       driverID,
		AssignmentMode: mode,
		AssignedAt:     now,
		AssignedBy:     actorID,
	}
	if existing != nil {
		schedule.ID = existing.ID
	}

	if err := uc.scheduleRepo.UpsertSchedule(ctx, tx, schedule); err != nil {
		return nil, err
	}
	if err := uc.tripRepo.UpdateTripStatus(ctx, tx, tripID, models.TripStatusScheduled); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("driver assigned to trip",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", driverID.String()),
		logger.String("mode", string(mode)))

	event := models.TripAssignedEvent{
		TripID:         tripID,
		DriverID:       driverID,
		AssignmentMode: mode,
		AssignedAt:     now,
	}
	if err := uc.gw.PublishTripAssigned(ctx, event); err != nil {
		logger.Warn("failed to publish trip assigned event", logger.Err(err))
	}

	return schedule, nil
}

// AutoAssign selects a driver with the configured strategy and assigns it.
// No eligible driver is a legitimate empty outcome: the trip stays PENDING
// and (nil, nil) is returned.
func (uc *assignmentUC) AutoAssign(ctx context.Context, tripID uuid.UUID) (*models.TripSchedule, error) {
	driverID, found, err := uc.strategy.SelectDriver(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Info("no eligible driver available, trip stays pending",
			logger.String("trip_id", tripID.String()))
		return nil, nil
	}
	return uc.Assign(ctx, tripID, driverID, models.AssignmentModeAuto, nil)
}

// Unassign removes the trip's assignment and reverts the trip to PENDING
// atomically
func (uc *assignmentUC) Unassign(ctx context.Context, tripID uuid.UUID) error {
	tx, err := uc.tripRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	trip, err := uc.tripRepo.GetTrip(ctx, tx, tripID, true)
	if err != nil {
		return err
	}
	if trip == nil {
		return apperror.Newf(apperror.KindNotFound, "trip %s not found", tripID)
	}

	existing, err := uc.scheduleRepo.GetScheduleByTrip(ctx, tx, tripID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.Newf(apperror.KindNotFound, "trip %s has no assignment", tripID)
	}
	if trip.Status != models.TripStatusScheduled {
		return apperror.Newf(apperror.KindInvalidState, "trip %s is %s and cannot be unassigned", tripID, trip.Status)
	}

	if err := uc.scheduleRepo.DeleteScheduleByTrip(ctx, tx, tripID); err != nil {
		return err
	}
	if err := uc.tripRepo.UpdateTripStatus(ctx, tx, tripID, models.TripStatusPending); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Info("driver unassigned from trip",
		logger.String("trip_id", tripID.String()))

	event := models.TripUnassignedEvent{
		TripID:       tripID,
		UnassignedAt: time.Now().UTC(),
	}
	if err := uc.gw.PublishTripUnassigned(ctx, event); err != nil {
		logger.Warn("failed to publish trip unassigned event", logger.Err(err))
	}

	return nil
}

// checkDriverConflicts verifies the driver has no assignment whose occupied
// interval overlaps the trip's, using the transaction so the check holds
// under the trip row lock
func (uc *assignmentUC) checkDriverConflicts(ctx context.Context, tx scheduling.Tx, trip *models.Trip, driverID uuid.UUID) error {
	route, err := uc.tripRepo.GetRoute(ctx, tx, trip.RouteID)
	if err != nil {
		return err
	}
	if route == nil {
		return apperror.Newf(apperror.KindNotFound, "route %s not found", trip.RouteID)
	}

	buffer := time.Duration(uc.cfg.Scheduler.TurnaroundBufferMinutes) * time.Minute
	occStart := trip.StartTime
	occEnd := trip.StartTime.Add(route.Duration() + buffer)

	commitments, err := uc.scheduleRepo.FindDriverCommitmentsBetween(ctx, tx, driverID, occStart.Add(-buffer), occEnd)
	if err != nil {
		return err
	}

	for _, c := range commitments {
		if c.TripID == trip.ID {
			// Reassignment of the same trip does not conflict with itself
			continue
		}
		cStart, cEnd := c.Interval(buffer)
		if intervalsOverlap(occStart, occEnd, cStart, cEnd) {
			return apperror.Newf(apperror.KindConflict,
				"driver %s has an overlapping assignment on trip %s", driverID, c.TripID)
		}
	}
	return nil
}
