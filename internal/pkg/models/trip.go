package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current lifecycle state of a trip instance
type TripStatus string

const (
	TripStatusPending   TripStatus = "PENDING"
	TripStatusScheduled TripStatus = "SCHEDULED"
	TripStatusDeparted  TripStatus = "DEPARTED"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed out of the status
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// RepeatFrequency represents the recurrence rule of a trip template
type RepeatFrequency string

const (
	RepeatNone    RepeatFrequency = "NONE"
	RepeatDaily   RepeatFrequency = "DAILY"
	RepeatWeekday RepeatFrequency = "WEEKDAY"
	RepeatWeekly  RepeatFrequency = "WEEKLY"
	RepeatMonthly RepeatFrequency = "MONTHLY"
)

// MatchesDate evaluates the recurrence rule against a target calendar date.
// anchor is the template's own start time, which carries the reference
// weekday and day-of-month for WEEKLY and MONTHLY rules. NONE matches only
// the anchor's own date.
func (f RepeatFrequency) MatchesDate(anchor, target time.Time) bool {
	switch f {
	case RepeatDaily:
		return true
	case RepeatWeekday:
		wd := target.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case RepeatWeekly:
		return target.Weekday() == anchor.Weekday()
	case RepeatMonthly:
		return target.Day() == anchor.Day()
	case RepeatNone:
		ay, am, ad := anchor.Date()
		ty, tm, td := target.Date()
		return ay == ty && am == tm && ad == td
	default:
		return false
	}
}

// Trip is either a recurring template (never bookable) or a concrete dated
// instance generated from one. Instances reference their originating template
// through TemplateTripID and their paired outbound/return leg through
// ReturnTripID, which must be mutually symmetric.
type Trip struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	RouteID         uuid.UUID       `json:"route_id" db:"route_id"`
	VehicleID       uuid.UUID       `json:"vehicle_id" db:"vehicle_id"`
	StartTime       time.Time       `json:"start_time" db:"start_time"`
	EndTime         *time.Time      `json:"end_time,omitempty" db:"end_time"`
	IsTemplate      bool            `json:"is_template" db:"is_template"`
	TemplateTripID  *uuid.UUID      `json:"template_trip_id,omitempty" db:"template_trip_id"`
	ReturnTripID    *uuid.UUID      `json:"return_trip_id,omitempty" db:"return_trip_id"`
	IsRoundTrip     bool            `json:"is_round_trip" db:"is_round_trip"`
	RepeatFrequency RepeatFrequency `json:"repeat_frequency" db:"repeat_frequency"`
	RepeatEndDate   *time.Time      `json:"repeat_end_date,omitempty" db:"repeat_end_date"`
	Status          TripStatus      `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// SweepResult reports the trip ids moved by one lifecycle sweep tick,
// grouped per transition
type SweepResult struct {
	Departed  []uuid.UUID `json:"departed"`
	Completed []uuid.UUID `json:"completed"`
	Cancelled []uuid.UUID `json:"cancelled"`
}

// Total returns the number of trips moved by the sweep
func (r SweepResult) Total() int {
	return len(r.Departed) + len(r.Completed) + len(r.Cancelled)
}
