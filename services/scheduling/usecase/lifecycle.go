package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling"
)

// lifecycleUC implements the scheduling.LifecycleUC interface
type lifecycleUC struct {
	tripRepo scheduling.TripRepo
	gw       scheduling.SchedulingGW
}

// NewLifecycleUC creates a new lifecycle use case
func NewLifecycleUC(tripRepo scheduling.TripRepo, gw scheduling.SchedulingGW) scheduling.LifecycleUC {
	return &lifecycleUC{
		tripRepo: tripRepo,
		gw:       gw,
	}
}

// Sweep advances every due trip one status transition in a single
// transaction. All three selections run before any update so a trip moves at
// most one step per tick; the status-gated predicates make a repeated tick at
// the same instant a no-op.
func (uc *lifecycleUC) Sweep(ctx context.Context, now time.Time) (models.SweepResult, error) {
	var result models.SweepResult

	tx, err := uc.tripRepo.BeginTx(ctx)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	departed, err := uc.tripRepo.FindDueForDeparture(ctx, tx, now)
	if err != nil {
		return result, err
	}
	completed, err := uc.tripRepo.FindDueForCompletion(ctx, tx, now)
	if err != nil {
		return result, err
	}
	cancelled, err := uc.tripRepo.FindExpiredPending(ctx, tx, now)
	if err != nil {
		return result, err
	}

	if err := uc.tripRepo.BulkUpdateTripStatus(ctx, tx, departed, models.TripStatusScheduled, models.TripStatusDeparted); err != nil {
		return result, err
	}
	if err := uc.tripRepo.BulkUpdateTripStatus(ctx, tx, completed, models.TripStatusDeparted, models.TripStatusCompleted); err != nil {
		return result, err
	}
	if err := uc.tripRepo.BulkUpdateTripStatus(ctx, tx, cancelled, models.TripStatusPending, models.TripStatusCancelled); err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		return result, err
	}

	result = models.SweepResult{
		Departed:  departed,
		Completed: completed,
		Cancelled: cancelled,
	}

	if result.Total() > 0 {
		logger.Info("lifecycle sweep applied transitions",
			logger.Time("now", now),
			logger.Int("departed", len(departed)),
			logger.Int("completed", len(completed)),
			logger.Int("cancelled", len(cancelled)))
	}

	uc.publishTransition(ctx, models.TripStatusDeparted, departed, now)
	uc.publishTransition(ctx, models.TripStatusCompleted, completed, now)
	uc.publishTransition(ctx, models.TripStatusCancelled, cancelled, now)

	return result, nil
}

func (uc *lifecycleUC) publishTransition(ctx context.Context, status models.TripStatus, ids []uuid.UUID, now time.Time) {
	if len(ids) == 0 {
		return
	}
	event := models.TripStatusEvent{
		Status:  status,
		TripIDs: ids,
		SweptAt: now,
	}
	if err := uc.gw.PublishTripStatus(ctx, event); err != nil {
		logger.Warn("failed to publish trip status event",
			logger.String("status", string(status)),
			logger.Err(err))
	}
}
