package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling"
)

// availabilityStrategy picks the first eligible driver without a temporally
// overlapping assignment, preferring the outbound leg's driver for return
// legs of round trips
type availabilityStrategy struct {
	cfg          *models.Config
	db           *sqlx.DB
	tripRepo     scheduling.TripRepo
	driverRepo   scheduling.DriverRepo
	scheduleRepo scheduling.ScheduleRepo
}

// NewAvailabilityStrategy creates the availability-based assignment strategy
func NewAvailabilityStrategy(
	cfg *models.Config,
	db *sqlx.DB,
	tripRepo scheduling.TripRepo,
	driverRepo scheduling.DriverRepo,
	scheduleRepo scheduling.ScheduleRepo,
) scheduling.AssignmentStrategy {
	return &availabilityStrategy{
		cfg:          cfg,
		db:           db,
		tripRepo:     tripRepo,
		driverRepo:   driverRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (s *availabilityStrategy) SelectDriver(ctx context.Context, tripID uuid.UUID) (uuid.UUID, bool, error) {
	trip, err := s.tripRepo.GetTrip(ctx, s.db, tripID, false)
	if err != nil {
		return uuid.Nil, false, err
	}
	if trip == nil {
		return uuid.Nil, false, apperror.Newf(apperror.KindNotFound, "trip %s not found", tripID)
	}
	if trip.IsTemplate {
		return uuid.Nil, false, apperror.Newf(apperror.KindInvalidState, "trip %s is a template and cannot be assigned", tripID)
	}

	route, err := s.tripRepo.GetRoute(ctx, s.db, trip.RouteID)
	if err != nil {
		return uuid.Nil, false, err
	}
	if route == nil {
		return uuid.Nil, false, apperror.Newf(apperror.KindNotFound, "route %s not found", trip.RouteID)
	}

	buffer := time.Duration(s.cfg.Scheduler.TurnaroundBufferMinutes) * time.Minute
	occStart := trip.StartTime
	occEnd := trip.StartTime.Add(route.Duration() + buffer)

	// The scan window bounds the candidate search; it is widened by the
	// target's own occupied span so a route longer than the window cannot
	// escape the scan.
	window := time.Duration(s.cfg.Scheduler.OverlapWindowHours) * time.Hour
	occupied := occEnd.Sub(occStart)
	from := occStart.Add(-(window + occupied + buffer))
	to := occEnd.Add(window)

	commitments, err := s.scheduleRepo.FindCommitmentsBetween(ctx, s.db, from, to)
	if err != nil {
		return uuid.Nil, false, err
	}

	busy := make(map[uuid.UUID]bool)
	for _, c := range commitments {
		if c.TripID == tripID {
			continue
		}
		cStart, cEnd := c.Interval(buffer)
		if intervalsOverlap(occStart, occEnd, cStart, cEnd) {
			busy[c.DriverID] = true
		}
	}

	now := time.Now().UTC()

	// Continuity rule: keep the outbound driver on the return leg of a
	// round trip when that driver is still free for this interval
	outbound, err := s.scheduleRepo.FindOutboundAssignment(ctx, s.db, tripID)
	if err != nil {
		return uuid.Nil, false, err
	}
	if outbound != nil && !busy[outbound.DriverID] {
		driver, err := s.driverRepo.GetDriver(ctx, s.db, outbound.DriverID)
		if err != nil {
			return uuid.Nil, false, err
		}
		if driver != nil && driver.EligibleAt(now) {
			logger.Debug("continuity preference applied",
				logger.String("trip_id", tripID.String()),
				logger.String("driver_id", outbound.DriverID.String()))
			return outbound.DriverID, true, nil
		}
	}

	busyIDs := make([]uuid.UUID, 0, len(busy))
	for driverID := range busy {
		busyIDs = append(busyIDs, driverID)
	}

	drivers, err := s.driverRepo.FindEligibleDrivers(ctx, s.db, now, busyIDs)
	if err != nil {
		return uuid.Nil, false, err
	}
	if len(drivers) == 0 {
		return uuid.Nil, false, nil
	}

	// Drivers are ordered by id ascending, a stable tie-break
	return drivers[0].ID, true, nil
}

// intervalsOverlap reports whether [startA, endA) and [startB, endB) intersect
func intervalsOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}
