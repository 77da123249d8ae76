package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/rahmanda/transbus/internal/pkg/constants"
	"github.com/rahmanda/transbus/internal/pkg/database"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
)

// RecurringJob is a named job enqueued on a schedule. Payload builds the job
// body for a given occurrence time.
type RecurringJob struct {
	Name     string
	Schedule Schedule
	Payload  func(occurrence time.Time) interface{}
}

// Dispatcher turns recurring job definitions into queue entries. Occurrence
// times are derived from wall clock and schedule, and a redis SET NX lock on
// the occurrence key keeps concurrent dispatcher instances from enqueueing
// the same occurrence twice; the JetStream msg-id is a second guard inside
// the stream's duplicate window.
type Dispatcher struct {
	runner   *Runner
	locks    *database.RedisClient
	cfg      models.JobsConfig
	jobs     []RecurringJob
	nextRuns map[string]time.Time

	stopCh chan struct{}
	doneWg sync.WaitGroup
}

// NewDispatcher creates a dispatcher for the given recurring jobs
func NewDispatcher(runner *Runner, locks *database.RedisClient, cfg models.JobsConfig, jobs []RecurringJob) *Dispatcher {
	return &Dispatcher{
		runner:   runner,
		locks:    locks,
		cfg:      cfg,
		jobs:     jobs,
		nextRuns: make(map[string]time.Time, len(jobs)),
		stopCh:   make(chan struct{}),
	}
}

// Run evaluates schedules until Stop is called
func (d *Dispatcher) Run(ctx context.Context) {
	now := time.Now().UTC()
	for _, job := range d.jobs {
		d.nextRuns[job.Name] = job.Schedule.Next(now)
		logger.Info("recurring job registered",
			logger.String("job", job.Name),
			logger.Time("next_run", d.nextRuns[job.Name]))
	}

	interval := time.Duration(d.cfg.DispatchEvery) * time.Second
	if interval <= 0 {
		interval = 15 * time.Second
	}

	d.doneWg.Add(1)
	go func() {
		defer d.doneWg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-d.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				d.evaluate(ctx, time.Now().UTC())
			}
		}
	}()
}

// evaluate enqueues every job whose occurrence time has passed
func (d *Dispatcher) evaluate(ctx context.Context, now time.Time) {
	for _, job := range d.jobs {
		occurrence := d.nextRuns[job.Name]
		if occurrence.IsZero() || now.Before(occurrence) {
			continue
		}

		d.enqueueOccurrence(ctx, job, occurrence)
		d.nextRuns[job.Name] = job.Schedule.Next(now)
	}
}

func (d *Dispatcher) enqueueOccurrence(ctx context.Context, job RecurringJob, occurrence time.Time) {
	key := constants.KeyJobLockPrefix + job.Name + ":" + occurrence.Format(time.RFC3339)
	ttl := time.Duration(d.cfg.LockTTLSecs) * time.Second
	if ttl <= 0 {
		ttl = 90 * time.Second
	}

	acquired, err := d.locks.SetNX(ctx, key, 1, ttl)
	if err != nil {
		logger.Error("failed to acquire occurrence lock",
			logger.String("job", job.Name),
			logger.Err(err))
		return
	}
	if !acquired {
		logger.Debug("occurrence already enqueued elsewhere",
			logger.String("job", job.Name),
			logger.Time("occurrence", occurrence))
		return
	}

	if err := d.runner.Enqueue(ctx, job.Name, job.Payload(occurrence), key); err != nil {
		// Release the lock so the next evaluation can retry the enqueue
		if delErr := d.locks.Delete(ctx, key); delErr != nil {
			logger.Warn("failed to release occurrence lock",
				logger.String("job", job.Name),
				logger.Err(delErr))
		}
		logger.Error("failed to enqueue recurring job",
			logger.String("job", job.Name),
			logger.Err(err))
		return
	}

	logger.Info("recurring job occurrence enqueued",
		logger.String("job", job.Name),
		logger.Time("occurrence", occurrence))
}

// Stop halts schedule evaluation and waits for the loop to exit
func (d *Dispatcher) Stop() {
	close(d.stopCh)
	d.doneWg.Wait()
}
