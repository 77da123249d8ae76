package models

import (
	"time"

	"github.com/google/uuid"
)

// Route represents a bus route. DurationHours drives the occupied-interval
// computation for driver assignment and lifecycle completion.
type Route struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	DurationHours float64   `json:"duration_hours" db:"duration_hours"`
	DistanceKm    float64   `json:"distance_km" db:"distance_km"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Duration returns the route's travel time as a time.Duration
func (r *Route) Duration() time.Duration {
	return time.Duration(r.DurationHours * float64(time.Hour))
}
