package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTripStatus_Terminal(t *testing.T) {
	tests := []struct {
		status   TripStatus
		terminal bool
	}{
		{TripStatusPending, false},
		{TripStatusScheduled, false},
		{TripStatusDeparted, false},
		{TripStatusCompleted, true},
		{TripStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.Terminal())
		})
	}
}

func TestRepeatFrequency_MatchesDate(t *testing.T) {
	// Monday 2025-06-02 08:00 UTC
	anchor := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		freq    RepeatFrequency
		target  time.Time
		matches bool
	}{
		{"daily matches any day", RepeatDaily, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"weekday matches wednesday", RepeatWeekday, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), true},
		{"weekday rejects saturday", RepeatWeekday, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), false},
		{"weekday rejects sunday", RepeatWeekday, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), false},
		{"weekly matches same weekday", RepeatWeekly, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), true},
		{"weekly rejects other weekday", RepeatWeekly, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), false},
		{"monthly matches same day of month", RepeatMonthly, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), true},
		{"monthly rejects other day", RepeatMonthly, time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), false},
		{"none matches only anchor date", RepeatNone, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), true},
		{"none rejects other dates", RepeatNone, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), false},
		{"unknown frequency never matches", RepeatFrequency("YEARLY"), time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.freq.MatchesDate(anchor, tt.target))
		})
	}
}

func TestSweepResult_Total(t *testing.T) {
	result := SweepResult{
		Departed:  []uuid.UUID{uuid.New(), uuid.New()},
		Completed: []uuid.UUID{uuid.New()},
		Cancelled: nil,
	}
	assert.Equal(t, 3, result.Total())

	assert.Equal(t, 0, SweepResult{}.Total())
}
