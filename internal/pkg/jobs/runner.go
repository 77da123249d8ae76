package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/constants"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
	natspkg "github.com/rahmanda/transbus/internal/pkg/nats"
)

// HandlerFunc processes one job payload. A nil return acknowledges the job.
// Domain errors park the job immediately; anything else is retried by the
// queue until MaxDeliver is exhausted, then parked.
type HandlerFunc func(ctx context.Context, payload []byte) error

// Runner is the durable at-least-once job queue built on a JetStream stream.
// Jobs are published to jobs.<name> subjects; exhausted or deterministic
// failures are parked under jobs.dead.<name> for operator inspection.
type Runner struct {
	client    *natspkg.Client
	producer  *natspkg.Producer
	cfg       models.JobsConfig
	consumers []*natspkg.Consumer
}

// NewRunner creates a job runner and ensures the backing stream exists
func NewRunner(ctx context.Context, client *natspkg.Client, cfg models.JobsConfig) (*Runner, error) {
	streamName := cfg.StreamName
	if streamName == "" {
		streamName = constants.StreamJobs
	}

	_, err := client.EnsureStream(ctx, jetstream.StreamConfig{
		Name:      streamName,
		Subjects:  []string{constants.SubjectJobPrefix + ">"},
		Retention: jetstream.WorkQueuePolicy,
		Storage:   jetstream.FileStorage,
		MaxAge:    time.Duration(cfg.MaxAgeHours) * time.Hour,
		Discard:   jetstream.DiscardOld,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure jobs stream: %w", err)
	}

	return &Runner{
		client:   client,
		producer: natspkg.NewProducer(client),
		cfg:      cfg,
	}, nil
}

// Enqueue publishes a job. A non-empty dedupKey suppresses duplicates inside
// the stream's duplicate window, which keeps recurring occurrences single.
func (r *Runner) Enqueue(ctx context.Context, jobName string, payload interface{}, dedupKey string) error {
	subject := constants.SubjectJobPrefix + jobName
	if err := r.producer.PublishDurable(ctx, subject, payload, dedupKey); err != nil {
		return fmt.Errorf("failed to enqueue job %s: %w", jobName, err)
	}
	logger.Debug("job enqueued",
		logger.String("job", jobName),
		logger.String("dedup_key", dedupKey))
	return nil
}

// Park moves a failed job onto the dead-letter subject with its payload and
// failure reason so an operator can inspect or replay it
func (r *Runner) Park(ctx context.Context, jobName string, payload []byte, reason string) {
	dead := models.DeadJob{
		JobName:  jobName,
		Payload:  payload,
		Reason:   reason,
		ParkedAt: time.Now().UTC(),
	}
	subject := constants.SubjectJobDeadPrefix + jobName
	if err := r.producer.PublishDurable(ctx, subject, dead, ""); err != nil {
		logger.Error("failed to park dead job",
			logger.String("job", jobName),
			logger.Err(err))
		return
	}
	logger.Warn("job parked on dead-letter subject",
		logger.String("job", jobName),
		logger.String("reason", reason))
}

// Consume starts a durable consumer for one job name. The wrapper translates
// handler errors into queue semantics: domain errors terminate delivery and
// park the job, transient errors ride the consumer's backoff ladder.
func (r *Runner) Consume(ctx context.Context, jobName string, handler HandlerFunc) error {
	backoff := make([]time.Duration, 0, len(r.cfg.BackoffSecs))
	for _, secs := range r.cfg.BackoffSecs {
		backoff = append(backoff, time.Duration(secs)*time.Second)
	}

	streamName := r.cfg.StreamName
	if streamName == "" {
		streamName = constants.StreamJobs
	}

	consumer, err := natspkg.NewJetStreamConsumer(ctx, r.client, natspkg.ConsumerConfig{
		StreamName:    streamName,
		ConsumerName:  consumerName(jobName),
		FilterSubject: constants.SubjectJobPrefix + jobName,
		MaxDeliver:    r.cfg.MaxDeliver,
		AckWait:       time.Duration(r.cfg.AckWaitSecs) * time.Second,
		Backoff:       backoff,
	}, func(msg jetstream.Msg) {
		r.dispatch(ctx, jobName, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consumer for job %s: %w", jobName, err)
	}

	r.consumers = append(r.consumers, consumer)
	return nil
}

func (r *Runner) dispatch(ctx context.Context, jobName string, msg jetstream.Msg, handler HandlerFunc) {
	err := handler(ctx, msg.Data())
	if err == nil {
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Warn("failed to ack job", logger.String("job", jobName), logger.Err(ackErr))
		}
		return
	}

	// Retrying a deterministic domain failure cannot change the outcome,
	// so park it instead of spinning through backoff.
	if apperror.IsDomain(err) {
		r.Park(ctx, jobName, msg.Data(), err.Error())
		if termErr := msg.Term(); termErr != nil {
			logger.Warn("failed to terminate job", logger.String("job", jobName), logger.Err(termErr))
		}
		return
	}

	meta, metaErr := msg.Metadata()
	if metaErr == nil && r.cfg.MaxDeliver > 0 && int(meta.NumDelivered) >= r.cfg.MaxDeliver {
		r.Park(ctx, jobName, msg.Data(), fmt.Sprintf("retries exhausted: %v", err))
		if termErr := msg.Term(); termErr != nil {
			logger.Warn("failed to terminate job", logger.String("job", jobName), logger.Err(termErr))
		}
		return
	}

	logger.Warn("job failed, scheduling redelivery",
		logger.String("job", jobName),
		logger.Err(err))
	if nakErr := msg.Nak(); nakErr != nil {
		logger.Warn("failed to nak job", logger.String("job", jobName), logger.Err(nakErr))
	}
}

// Stop drains all consumers
func (r *Runner) Stop() {
	for _, consumer := range r.consumers {
		consumer.Stop()
	}
}

func consumerName(jobName string) string {
	name := make([]byte, 0, len(jobName))
	for i := 0; i < len(jobName); i++ {
		if jobName[i] == '.' {
			name = append(name, '-')
			continue
		}
		name = append(name, jobName[i])
	}
	return "job-" + string(name)
}
