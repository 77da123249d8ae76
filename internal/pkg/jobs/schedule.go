package jobs

import "time"

// Schedule computes the next occurrence of a recurring job
type Schedule interface {
	Next(after time.Time) time.Time
}

// Every fires on fixed interval boundaries (UTC-aligned), so every process
// computes the same occurrence times regardless of when it started
type Every time.Duration

// Next returns the first interval boundary strictly after the given time
func (e Every) Next(after time.Time) time.Time {
	interval := time.Duration(e)
	return after.Truncate(interval).Add(interval)
}

// DailyAt fires once a day at a fixed UTC wall-clock time
type DailyAt struct {
	Hour   int
	Minute int
}

// Next returns the first matching wall-clock time strictly after the given time
func (d DailyAt) Next(after time.Time) time.Time {
	after = after.UTC()
	next := time.Date(after.Year(), after.Month(), after.Day(), d.Hour, d.Minute, 0, 0, time.UTC)
	if !next.After(after) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
