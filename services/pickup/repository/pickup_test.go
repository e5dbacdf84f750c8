package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/pickup/repository"
)

var pickupRows = []string{
	"id", "user_id", "scrapper_id", "weight_kg", "address", "pincode",
	"pickup_date", "time_slot", "materials", "status", "price", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestCreatePickup_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickup := &models.PickupRequest{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		WeightKg:  12.5,
		Address:   "14 Lake View Road",
		Pincode:   "560034",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:  models.TimeSlotMorning,
		Materials: models.MaterialSet{"paper", "plastic"},
		Status:    models.PickupStatusRequested,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pickups")).
		WithArgs(pickup.ID, pickup.UserID, pickup.WeightKg, pickup.Address, pickup.Pincode,
			pickup.Date, pickup.TimeSlot, "paper,plastic", pickup.Status,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreatePickup(context.Background(), pickup)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPickup_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickupID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(pickupID).
		WillReturnRows(sqlmock.NewRows(pickupRows).AddRow(
			pickupID, userID, nil, 12.5, "14 Lake View Road", "560034",
			now, "morning", "paper,metal", "REQUESTED", nil, now, now,
		))

	pickup, err := repo.GetPickup(context.Background(), pickupID)
	require.NoError(t, err)
	assert.Equal(t, pickupID, pickup.ID)
	assert.Nil(t, pickup.ScrapperID)
	assert.Nil(t, pickup.Price)
	assert.Equal(t, models.PickupStatusRequested, pickup.Status)
	assert.Equal(t, models.MaterialSet{"paper", "metal"}, pickup.Materials)
}

func TestGetPickup_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickupID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(pickupID).
		WillReturnRows(sqlmock.NewRows(pickupRows))

	pickup, err := repo.GetPickup(context.Background(), pickupID)
	assert.Nil(t, pickup)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAssignScrapper_Claimed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickupID := uuid.New()
	scrapperID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pickups")).
		WithArgs(pickupID, scrapperID, models.PickupStatusScheduled, sqlmock.AnyArg(), models.PickupStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.AssignScrapper(context.Background(), pickupID, scrapperID)
	assert.NoError(t, err)
	assert.True(t, claimed)
}

func TestAssignScrapper_AlreadyClaimed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickupID := uuid.New()

	// Guard on status REQUESTED matches no row once another scrapper won
	mock.ExpectExec(regexp.QuoteMeta("UPDATE pickups")).
		WithArgs(pickupID, sqlmock.AnyArg(), models.PickupStatusScheduled, sqlmock.AnyArg(), models.PickupStatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.AssignScrapper(context.Background(), pickupID, uuid.New())
	assert.NoError(t, err)
	assert.False(t, claimed)
}

func TestUpdateStatus_Moved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickupID := uuid.New()
	price := 240.0

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pickups")).
		WithArgs(pickupID, models.PickupStatusArrived, models.PickupStatusCompleted, &price, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	moved, err := repo.UpdateStatus(context.Background(), pickupID, models.PickupStatusArrived, models.PickupStatusCompleted, &price)
	assert.NoError(t, err)
	assert.True(t, moved)
}

func TestUpdateStatus_GuardMiss(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	pickupID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pickups")).
		WithArgs(pickupID, models.PickupStatusScheduled, models.PickupStatusEnRoute, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	moved, err := repo.UpdateStatus(context.Background(), pickupID, models.PickupStatusScheduled, models.PickupStatusEnRoute, nil)
	assert.NoError(t, err)
	assert.False(t, moved)
}

func TestListByPincodeAndStatus_OldestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	older := uuid.New()
	newer := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
		WithArgs("560034", models.PickupStatusRequested).
		WillReturnRows(sqlmock.NewRows(pickupRows).
			AddRow(older, uuid.New(), nil, 8.0, "addr one", "560034",
				now, "morning", "paper", "REQUESTED", nil, now.Add(-time.Hour), now).
			AddRow(newer, uuid.New(), nil, 9.0, "addr two", "560034",
				now, "evening", "metal", "REQUESTED", nil, now, now))

	pickups, err := repo.ListByPincodeAndStatus(context.Background(), "560034", models.PickupStatusRequested)
	require.NoError(t, err)
	require.Len(t, pickups, 2)
	assert.Equal(t, older, pickups[0].ID)
	assert.Equal(t, newer, pickups[1].ID)
}

func TestListByUser_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(assert.AnError)

	pickups, err := repo.ListByUser(context.Background(), uuid.New())
	assert.Nil(t, pickups)
	assert.ErrorIs(t, err, models.ErrBackendUnavailable)
}

func TestListCandidateScrappers_BestRatedFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPickupRepo(&models.Config{}, db)

	top := uuid.New()
	second := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"user_id", "pincode", "available", "vehicle_type", "working_hours",
		"materials", "rating", "latitude", "longitude", "geo_cell", "created_at", "updated_at",
	}).
		AddRow(top, "560034", true, "van", "9-18", "paper,plastic", 4.9, 12.93, 77.62, "tdr1w", now, now).
		AddRow(second, "560034", true, "bike", "9-18", "paper", 4.1, nil, nil, nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY s.rating DESC")).
		WithArgs("560034", 20).
		WillReturnRows(rows)

	candidates, err := repo.ListCandidateScrappers(context.Background(), "560034", 20)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, top, candidates[0].UserID)
	assert.NotNil(t, candidates[0].Latitude)
	assert.Equal(t, second, candidates[1].UserID)
	assert.Nil(t, candidates[1].Latitude)
	assert.Empty(t, candidates[1].GeoCell)
}
