package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/services/scheduling"
)

// workloadStrategy picks the eligible driver with the fewest open
// assignments, ties broken by id ascending
type workloadStrategy struct {
	cfg        *models.Config
	db         *sqlx.DB
	tripRepo   scheduling.TripRepo
	driverRepo scheduling.DriverRepo
}

// NewWorkloadStrategy creates the workload-balancing assignment strategy
func NewWorkloadStrategy(
	cfg *models.Config,
	db *sqlx.DB,
	tripRepo scheduling.TripRepo,
	driverRepo scheduling.DriverRepo,
) scheduling.AssignmentStrategy {
	return &workloadStrategy{
		cfg:        cfg,
		db:         db,
		tripRepo:   tripRepo,
		driverRepo: driverRepo,
	}
}

func (s *workloadStrategy) SelectDriver(ctx context.Context, tripID uuid.UUID) (uuid.UUID, bool, error) {
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

	drivers, err := s.driverRepo.FindEligibleDrivers(ctx, s.db, time.Now().UTC(), nil)
	if err != nil {
		return uuid.Nil, false, err
	}
	if len(drivers) == 0 {
		return uuid.Nil, false, nil
	}

	driverIDs := make([]uuid.UUID, 0, len(drivers))
	for _, driver := range drivers {
		driverIDs = append(driverIDs, driver.ID)
	}

	counts, err := s.driverRepo.CountOpenAssignments(ctx, s.db, driverIDs)
	if err != nil {
		return uuid.Nil, false, err
	}

	// Drivers arrive ordered by id ascending; a strict comparison keeps the
	// lowest id on ties
	best := drivers[0]
	for _, driver := range drivers[1:] {
		if counts[driver.ID] < counts[best.ID] {
			best = driver
		}
	}
	return best.ID, true, nil
}
