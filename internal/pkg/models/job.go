package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerateJobPayload asks the generator to expand templates for one calendar day
type GenerateJobPayload struct {
	TargetDate string `json:"target_date"` // YYYY-MM-DD
}

// AssignJobPayload asks for an automatic driver assignment of one trip instance
type AssignJobPayload struct {
	TripID uuid.UUID `json:"trip_id"`
}

// SweepJobPayload triggers one lifecycle sweep tick
type SweepJobPayload struct {
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// DeadJob is the parked form of a job that exhausted its retries or failed
// on a deterministic domain error. It is published to the dead-letter
// subject for operator inspection.
type DeadJob struct {
	JobName  string    `json:"job_name"`
	Payload  []byte    `json:"payload"`
	Reason   string    `json:"reason"`
	ParkedAt time.Time `json:"parked_at"`
}

// TripsGeneratedEvent is broadcast after a generation run commits
type TripsGeneratedEvent struct {
	TargetDate string      `json:"target_date"`
	TripIDs    []uuid.UUID `json:"trip_ids"`
}

// TripAssignedEvent is broadcast after an assignment transaction commits
type TripAssignedEvent struct {
	TripID         uuid.UUID      `json:"trip_id"`
	DriverID       uuid.UUID      `json:"driver_id"`
	AssignmentMode AssignmentMode `json:"assignment_mode"`
	AssignedAt     time.Time      `json:"assigned_at"`
}

// TripUnassignedEvent is broadcast after an unassignment commits
type TripUnassignedEvent struct {
	TripID       uuid.UUID `json:"trip_id"`
	UnassignedAt time.Time `json:"unassigned_at"`
}

// TripStatusEvent is broadcast after a sweep tick commits status transitions
type TripStatusEvent struct {
	Status  TripStatus  `json:"status"`
	TripIDs []uuid.UUID `json:"trip_ids"`
	SweptAt time.Time   `json:"swept_at"`
}
