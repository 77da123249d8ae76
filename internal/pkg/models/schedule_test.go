package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDriverCommitment_Interval(t *testing.T) {
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	c := DriverCommitment{
		StartTime:     start,
		DurationHours: 2.5,
	}

	from, to := c.Interval(30 * time.Minute)
	assert.Equal(t, start, from)
	assert.Equal(t, start.Add(3*time.Hour), to)

	// Zero buffer leaves just the route duration
	_, to = c.Interval(0)
	assert.Equal(t, start.Add(2*time.Hour+30*time.Minute), to)
}
