package scheduling

import (
	"context"

	"github.com/rahmanda/transbus/internal/pkg/models"
)

// SchedulingGW defines the fire-and-forget broadcast surface. Events are
// published after the owning transaction commits; delivery failures are
// logged, never propagated.
type SchedulingGW interface {
	PublishTripsGenerated(ctx context.Context, event models.TripsGeneratedEvent) error
	PublishTripAssigned(ctx context.Context, event models.TripAssignedEvent) error
	PublishTripUnassigned(ctx context.Context, event models.TripUnassignedEvent) error
	PublishTripStatus(ctx context.Context, event models.TripStatusEvent) error
}
