package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling"
)

// generatorUC implements the scheduling.GeneratorUC interface
type generatorUC struct {
	cfg      *models.Config
	tripRepo scheduling.TripRepo
	gw       scheduling.SchedulingGW
}

// NewGeneratorUC creates a new trip generator use case
func NewGeneratorUC(
	cfg *models.Config,
	tripRepo scheduling.TripRepo,
	gw scheduling.SchedulingGW,
) scheduling.GeneratorUC {
	return &generatorUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		gw:       gw,
	}
}

// Generate expands every active template matching the target date into a
// dated PENDING instance. Paired outbound/return templates are materialized
// together and cross-linked; the whole run commits or rolls back as one
// transaction, and ids are reported only after commit so downstream
// assignment jobs never reference rolled-back rows.
func (uc *generatorUC) Generate(ctx context.Context, targetDate time.Time) ([]uuid.UUID, error) {
	targetDate = dateOnly(targetDate)

	tx, err := uc.tripRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	templates, err := uc.tripRepo.FindTemplatesActiveOn(ctx, tx, targetDate)
	if err != nil {
		return nil, err
	}

	templatesByID := make(map[uuid.UUID]*models.Trip, len(templates))
	for _, tpl := range templates {
		templatesByID[tpl.ID] = tpl
	}

	processed := make(map[uuid.UUID]bool, len(templates))
	var created []uuid.UUID

	for _, tpl := range templates {
		if processed[tpl.ID] {
			// Already materialized as the return leg of an earlier template
			continue
		}
		if !tpl.RepeatFrequency.MatchesDate(tpl.StartTime, targetDate) {
			continue
		}

		exists, err := uc.tripRepo.HasInstanceOnDate(ctx, tx, tpl.ID, targetDate)
		if err != nil {
			return nil, err
		}
		if exists {
			processed[tpl.ID] = true
			// The paired return leg was committed in the same earlier run, so
			// it must not be re-materialized standalone on the target date
			if tpl.ReturnTripID != nil {
				processed[*tpl.ReturnTripID] = true
			}
			continue
		}

		instance := materializeInstance(tpl, targetDate)

		var returnInstance *models.Trip
		if tpl.ReturnTripID != nil {
			returnTpl, ok := templatesByID[*tpl.ReturnTripID]
			if ok && !processed[returnTpl.ID] {
				// The return leg lands on the target date shifted by the
				// calendar-day offset between the two templates
				offsetDays := calendarDayDiff(tpl.StartTime, returnTpl.StartTime)
				returnDate := targetDate.AddDate(0, 0, offsetDays)

				// An overnight offset can push the return past its own
				// inclusive recurrence bound; the outbound then runs unpaired
				if withinRecurrenceBound(returnTpl, returnDate) {
					returnExists, err := uc.tripRepo.HasInstanceOnDate(ctx, tx, returnTpl.ID, returnDate)
					if err != nil {
						return nil, err
					}
					if !returnExists {
						returnInstance = materializeInstance(returnTpl, returnDate)
						instance.ReturnTripID = &returnInstance.ID
						returnInstance.ReturnTripID = &instance.ID
					}
				}
				processed[returnTpl.ID] = true
			}
		}

		if err := uc.tripRepo.CreateTripInstance(ctx, tx, instance); err != nil {
			return nil, err
		}
		created = append(created, instance.ID)
		processed[tpl.ID] = true

		if returnInstance != nil {
			if err := uc.tripRepo.CreateTripInstance(ctx, tx, returnInstance); err != nil {
				return nil, err
			}
			created = append(created, returnInstance.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("trip generation completed",
		logger.Time("target_date", targetDate),
		logger.Int("created", len(created)))

	if len(created) > 0 {
		event := models.TripsGeneratedEvent{
			TargetDate: targetDate.Format("2006-01-02"),
			TripIDs:    created,
		}
		if err := uc.gw.PublishTripsGenerated(ctx, event); err != nil {
			logger.Warn("failed to publish trips generated event", logger.Err(err))
		}
	}

	return created, nil
}

// materializeInstance copies a template into a concrete dated instance,
// composing the instance's wall-clock start from the target date and the
// template's time-of-day anchor
func materializeInstance(tpl *models.Trip, targetDate time.Time) *models.Trip {
	anchor := tpl.StartTime.UTC()
	start := time.Date(
		targetDate.Year(), targetDate.Month(), targetDate.Day(),
		anchor.Hour(), anchor.Minute(), anchor.Second(), 0,
		time.UTC,
	)

	templateID := tpl.ID
	now := time.Now().UTC()
	return &models.Trip{
		ID:              uuid.New(),
		RouteID:         tpl.RouteID,
		VehicleID:       tpl.VehicleID,
		StartTime:       start,
		IsTemplate:      false,
		TemplateTripID:  &templateID,
		IsRoundTrip:     tpl.IsRoundTrip,
		RepeatFrequency: models.RepeatNone,
		Status:          models.TripStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// withinRecurrenceBound reports whether the date falls on or before the
// template's inclusive recurrence end
func withinRecurrenceBound(tpl *models.Trip, date time.Time) bool {
	return tpl.RepeatEndDate == nil || !dateOnly(date).After(dateOnly(*tpl.RepeatEndDate))
}

// calendarDayDiff returns the whole-day offset from a's date to b's date
func calendarDayDiff(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

// dateOnly truncates a timestamp to its UTC calendar date
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
