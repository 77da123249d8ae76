package models

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentMode indicates how a driver was assigned to a trip
type AssignmentMode string

const (
	AssignmentModeAuto   AssignmentMode = "AUTO"
	AssignmentModeManual AssignmentMode = "MANUAL"
)

// TripSchedule is the driver assignment for a trip instance. At most one
// row exists per trip; reassignment updates the row in place.
type TripSchedule struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	TripID         uuid.UUID      `json:"trip_id" db:"trip_id"`
	DriverID       uuid.UUID      `json:"driver_id" db:"driver_id"`
	AssignmentMode AssignmentMode `json:"assignment_mode" db:"assignment_mode"`
	AssignedAt     time.Time      `json:"assigned_at" db:"assigned_at"`
	AssignedBy     *uuid.UUID     `json:"assigned_by,omitempty" db:"assigned_by"`
}

// DriverCommitment is a flattened view of an existing assignment joined with
// its trip's timing, used by the overlap search. EndTime already includes the
// route duration but not the turnaround buffer.
type DriverCommitment struct {
	TripID        uuid.UUID  `json:"trip_id" db:"trip_id"`
	DriverID      uuid.UUID  `json:"driver_id" db:"driver_id"`
	StartTime     time.Time  `json:"start_time" db:"start_time"`
	DurationHours float64    `json:"duration_hours" db:"duration_hours"`
	Status        TripStatus `json:"status" db:"status"`
}

// Interval returns the commitment's occupied interval [start, start+duration+buffer)
func (c *DriverCommitment) Interval(buffer time.Duration) (time.Time, time.Time) {
	end := c.StartTime.Add(time.Duration(c.DurationHours*float64(time.Hour)) + buffer)
	return c.StartTime, end
}
