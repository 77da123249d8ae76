package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rahmanda/transbus/internal/pkg/logger"
)

// JetStreamMessageHandler processes a JetStream message. The handler owns the
// acknowledgment: it must Ack, Nak or Term the message itself.
type JetStreamMessageHandler func(msg jetstream.Msg)

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	MaxDeliver    int
	AckWait       time.Duration
	Backoff       []time.Duration
	MaxAckPending int
}

// Consumer wraps a running durable JetStream consumer
type Consumer struct {
	name       string
	consumeCtx jetstream.ConsumeContext
}

// NewJetStreamConsumer creates (or updates) a durable explicit-ack consumer
// on the stream and starts delivering messages to the handler
func NewJetStreamConsumer(ctx context.Context, client *Client, cfg ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	stream, err := client.JetStream().Stream(ctx, cfg.StreamName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up stream %s: %w", cfg.StreamName, err)
	}

	maxAckPending := cfg.MaxAckPending
	if maxAckPending == 0 {
		maxAckPending = 64
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: cfg.FilterSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
		BackOff:       cfg.Backoff,
		MaxAckPending: maxAckPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", cfg.ConsumerName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		handler(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming on %s: %w", cfg.ConsumerName, err)
	}

	logger.Info("JetStream consumer started",
		logger.String("stream", cfg.StreamName),
		logger.String("consumer", cfg.ConsumerName),
		logger.String("subject", cfg.FilterSubject))

	return &Consumer{name: cfg.ConsumerName, consumeCtx: consumeCtx}, nil
}

// Stop drains the consumer, letting in-flight handlers finish
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Drain()
	}
}
