package gateway

import (
	"context"

	"github.com/rahmanda/transbus/internal/pkg/constants"
	"github.com/rahmanda/transbus/internal/pkg/models"
	natspkg "github.com/rahmanda/transbus/internal/pkg/nats"
	"github.com/rahmanda/transbus/services/scheduling"
)

// schedulingGW broadcasts scheduling events over core NATS. Broadcasts are
// best-effort; durability is reserved for the job stream.
type schedulingGW struct {
	producer *natspkg.Producer
}

// NewSchedulingGW creates a new scheduling gateway
func NewSchedulingGW(producer *natspkg.Producer) scheduling.SchedulingGW {
	return &schedulingGW{producer: producer}
}

func (g *schedulingGW) PublishTripsGenerated(_ context.Context, event models.TripsGeneratedEvent) error {
	return g.producer.Publish(constants.SubjectTripsGenerated, event)
}

func (g *schedulingGW) PublishTripAssigned(_ context.Context, event models.TripAssignedEvent) error {
	return g.producer.Publish(constants.SubjectTripAssigned, event)
}

func (g *schedulingGW) PublishTripUnassigned(_ context.Context, event models.TripUnassignedEvent) error {
	return g.producer.Publish(constants.SubjectTripUnassigned, event)
}

func (g *schedulingGW) PublishTripStatus(_ context.Context, event models.TripStatusEvent) error {
	return g.producer.Publish(constants.SubjectTripStatus, event)
}
