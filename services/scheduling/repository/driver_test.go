package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func driverRows(drivers ...*models.Driver) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "is_active", "is_suspended", "license_expiry_date", "created_at", "updated_at",
	})
	for _, d := range drivers {
		rows.AddRow(d.ID, d.Name, d.IsActive, d.IsSuspended, d.LicenseExpiryDate, d.CreatedAt, d.UpdatedAt)
	}
	return rows
}

func TestGetDriver_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	driver := &models.Driver{
		ID:       uuid.New(),
		Name:     "Budi Santoso",
		IsActive: true,
	}

	mock.ExpectQuery(`SELECT (.+) FROM drivers\s+WHERE id = \$1`).
		WithArgs(driver.ID).
		WillReturnRows(driverRows(driver))

	got, err := repo.GetDriver(context.Background(), db, driver.ID)
	assert.NoError(t, err)
	assert.Equal(t, driver.ID, got.ID)
	assert.True(t, got.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriver_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	driverID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM drivers`).
		WithArgs(driverID).
		WillReturnRows(driverRows())

	got, err := repo.GetDriver(context.Background(), db, driverID)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEligibleDrivers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	d1 := &models.Driver{ID: uuid.New(), Name: "Budi", IsActive: true}
	d2 := &models.Driver{ID: uuid.New(), Name: "Sari", IsActive: true}

	mock.ExpectQuery(`SELECT (.+) FROM drivers\s+WHERE is_active = TRUE\s+AND is_suspended = FALSE`).
		WithArgs(now).
		WillReturnRows(driverRows(d1, d2))

	drivers, err := repo.FindEligibleDrivers(context.Background(), db, now, nil)
	assert.NoError(t, err)
	assert.Len(t, drivers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEligibleDrivers_WithExclusions(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	busy := []uuid.UUID{uuid.New(), uuid.New()}
	free := &models.Driver{ID: uuid.New(), Name: "Sari", IsActive: true}

	mock.ExpectQuery(`AND id NOT IN \(\$2, \$3\)`).
		WithArgs(now, busy[0], busy[1]).
		WillReturnRows(driverRows(free))

	drivers, err := repo.FindEligibleDrivers(context.Background(), db, now, busy)
	assert.NoError(t, err)
	assert.Len(t, drivers, 1)
	assert.Equal(t, free.ID, drivers[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOpenAssignments(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	d1 := uuid.New()
	d2 := uuid.New()

	mock.ExpectQuery(`SELECT s\.driver_id, COUNT\(\*\) AS open_count`).
		WithArgs(models.TripStatusCancelled, models.TripStatusCompleted, d1, d2).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "open_count"}).
			AddRow(d1, 3))

	counts, err := repo.CountOpenAssignments(context.Background(), db, []uuid.UUID{d1, d2})
	assert.NoError(t, err)
	assert.Equal(t, 3, counts[d1])

	// Drivers with no open assignments are absent, reading them yields zero
	assert.Equal(t, 0, counts[d2])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOpenAssignments_EmptyInput(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDriverRepository(&models.Config{}, db)

	counts, err := repo.CountOpenAssignments(context.Background(), db, nil)
	assert.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
