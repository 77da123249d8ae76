package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/constants"
	jobspkg "github.com/rahmanda/transbus/internal/pkg/jobs"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/internal/pkg/retry"
	"github.com/rahmanda/transbus/services/scheduling"
)

// SchedulingHandler consumes scheduling jobs off the durable queue
type SchedulingHandler struct {
	generatorUC  scheduling.GeneratorUC
	assignmentUC scheduling.AssignmentUC
	lifecycleUC  scheduling.LifecycleUC
	runner       *jobspkg.Runner
	retrier      *retry.Retrier
}

// NewSchedulingHandler creates a new scheduling job handler
func NewSchedulingHandler(
	generatorUC scheduling.GeneratorUC,
	assignmentUC scheduling.AssignmentUC,
	lifecycleUC scheduling.LifecycleUC,
	runner *jobspkg.Runner,
) *SchedulingHandler {
	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = func(err error) bool {
		// Domain failures are deterministic; hand them straight back to the
		// queue so it parks them
		return !apperror.IsDomain(err)
	}

	return &SchedulingHandler{
		generatorUC:  generatorUC,
		assignmentUC: assignmentUC,
		lifecycleUC:  lifecycleUC,
		runner:       runner,
		retrier:      retry.New(retryCfg),
	}
}

// InitJobConsumers starts the durable consumers for all scheduling jobs
func (h *SchedulingHandler) InitJobConsumers(ctx context.Context) error {
	if err := h.runner.Consume(ctx, constants.JobTripGenerate, h.handleGenerate); err != nil {
		return err
	}
	if err := h.runner.Consume(ctx, constants.JobTripAssign, h.handleAssign); err != nil {
		return err
	}
	if err := h.runner.Consume(ctx, constants.JobTripSweep, h.handleSweep); err != nil {
		return err
	}
	return nil
}

// handleGenerate expands templates for the target date and fans out one
// assignment job per created instance. Enqueues happen only after the
// generation transaction committed; the trip id doubles as dedup key so a
// redelivered generate job cannot double-enqueue assignments.
func (h *SchedulingHandler) handleGenerate(ctx context.Context, payload []byte) error {
	var job models.GenerateJobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return apperror.Wrap(apperror.KindInvalidState, "malformed generate payload", err)
	}

	targetDate, err := time.Parse("2006-01-02", job.TargetDate)
	if err != nil {
		return apperror.Wrap(apperror.KindInvalidState, "invalid target date", err)
	}

	var tripIDs []uuid.UUID
	err = h.retrier.Execute(ctx, func(ctx context.Context) error {
		var genErr error
		tripIDs, genErr = h.generatorUC.Generate(ctx, targetDate)
		return genErr
	})
	if err != nil {
		return err
	}

	for _, tripID := range tripIDs {
		assignPayload := models.AssignJobPayload{TripID: tripID}
		dedupKey := fmt.Sprintf("%s:%s", constants.JobTripAssign, tripID)
		if err := h.runner.Enqueue(ctx, constants.JobTripAssign, assignPayload, dedupKey); err != nil {
			return fmt.Errorf("failed to enqueue assignment for trip %s: %w", tripID, err)
		}
	}

	logger.Info("generate job processed",
		logger.String("target_date", job.TargetDate),
		logger.Int("trips", len(tripIDs)))
	return nil
}

// handleAssign runs automatic assignment for one trip. No eligible driver is
// a clean outcome and acknowledges the job.
func (h *SchedulingHandler) handleAssign(ctx context.Context, payload []byte) error {
	var job models.AssignJobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return apperror.Wrap(apperror.KindInvalidState, "malformed assign payload", err)
	}

	return h.retrier.Execute(ctx, func(ctx context.Context) error {
		_, err := h.assignmentUC.AutoAssign(ctx, job.TripID)
		return err
	})
}

// handleSweep runs one lifecycle tick
func (h *SchedulingHandler) handleSweep(ctx context.Context, payload []byte) error {
	var job models.SweepJobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return apperror.Wrap(apperror.KindInvalidState, "malformed sweep payload", err)
	}

	return h.retrier.Execute(ctx, func(ctx context.Context) error {
		_, err := h.lifecycleUC.Sweep(ctx, time.Now().UTC())
		return err
	})
}
