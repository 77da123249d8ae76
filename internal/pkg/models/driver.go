package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a bus driver record
type Driver struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	IsActive          bool       `json:"is_active" db:"is_active"`
	IsSuspended       bool       `json:"is_suspended" db:"is_suspended"`
	LicenseExpiryDate *time.Time `json:"license_expiry_date,omitempty" db:"license_expiry_date"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// EligibleAt reports whether the driver may be assigned to a trip at the
// given instant: active, not suspended, and license not expired (a nil
// expiry date means the license never expires).
func (d *Driver) EligibleAt(now time.Time) bool {
	if !d.IsActive || d.IsSuspended {
		return false
	}
	if d.LicenseExpiryDate != nil && !d.LicenseExpiryDate.After(now) {
		return false
	}
	return true
}
