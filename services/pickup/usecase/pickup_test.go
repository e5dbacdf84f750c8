package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/pickup/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pickup: models.PickupConfig{
			MinWeightKg:  7.0,
			PointsPerKg:  10,
			CandidateCap: 20,
		},
	}
}

func testSession() *models.Session {
	return &models.Session{
		UserID: uuid.New(),
		Email:  "resident@example.com",
		Role:   models.RoleUser,
	}
}

func validCreateRequest() *models.CreatePickupRequest {
	return &models.CreatePickupRequest{
		WeightKg:  12.5,
		Address:   "14 Lake View Road",
		Pincode:   "560034",
		Date:      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		TimeSlot:  "morning",
		Materials: []string{"paper", "plastic"},
	}
}

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	session := testSession()
	req := validCreateRequest()

	candidates := []models.ScrapperProfile{
		{UserID: uuid.New(), Pincode: req.Pincode, Available: true, Rating: 4.8},
		{UserID: uuid.New(), Pincode: req.Pincode, Available: true, Rating: 4.2},
	}

	mockRepo.EXPECT().
		CreatePickup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pickup *models.PickupRequest) error {
			assert.Equal(t, session.UserID, pickup.UserID)
			assert.Nil(t, pickup.ScrapperID)
			assert.Equal(t, models.PickupStatusRequested, pickup.Status)
			assert.Equal(t, models.TimeSlotMorning, pickup.TimeSlot)
			assert.ElementsMatch(t, []string{models.MaterialPaper, models.MaterialPlastic}, pickup.Materials)
			return nil
		})
	mockRepo.EXPECT().
		ListCandidateScrappers(gomock.Any(), req.Pincode, 20).
		Return(candidates, nil)
	mockGW.EXPECT().
		PublishPickupEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PickupEvent) error {
			assert.Equal(t, models.PickupEventCreated, event.Kind)
			return nil
		})

	result, err := uc.CreateRequest(context.Background(), session, req)

	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusRequested, result.Pickup.Status)
	assert.Len(t, result.Candidates, 2)
}

func TestCreateRequest_WeightBelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	req := validCreateRequest()
	req.WeightKg = 6.9

	result, err := uc.CreateRequest(context.Background(), testSession(), req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateRequest_WeightAtMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	req := validCreateRequest()
	req.WeightKg = 7.0

	mockRepo.EXPECT().CreatePickup(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ListCandidateScrappers(gomock.Any(), req.Pincode, 20).Return(nil, nil)
	mockGW.EXPECT().PublishPickupEvent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.CreateRequest(context.Background(), testSession(), req)

	require.NoError(t, err)
	assert.Equal(t, 7.0, result.Pickup.WeightKg)
}

func TestCreateRequest_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreatePickupRequest)
	}{
		{"bad pincode", func(r *models.CreatePickupRequest) { r.Pincode = "05601" }},
		{"pincode leading zero", func(r *models.CreatePickupRequest) { r.Pincode = "056012" }},
		{"missing address", func(r *models.CreatePickupRequest) { r.Address = "" }},
		{"malformed date", func(r *models.CreatePickupRequest) { r.Date = "31-12-2026" }},
		{"past date", func(r *models.CreatePickupRequest) { r.Date = "2020-01-01" }},
		{"unknown slot", func(r *models.CreatePickupRequest) { r.TimeSlot = "midnight" }},
		{"no materials", func(r *models.CreatePickupRequest) { r.Materials = nil }},
		{"blank materials", func(r *models.CreatePickupRequest) { r.Materials = []string{"", "  "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPickupRepo(ctrl)
			mockGW := mocks.NewMockPickupGW(ctrl)
			uc := NewPickupUC(mockRepo, mockGW, testConfig())

			req := validCreateRequest()
			tt.mutate(req)

			result, err := uc.CreateRequest(context.Background(), testSession(), req)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestCreateRequest_CandidateLookupFailureIsAdvisory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	req := validCreateRequest()

	mockRepo.EXPECT().CreatePickup(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		ListCandidateScrappers(gomock.Any(), req.Pincode, 20).
		Return(nil, errors.New("connection refused"))
	mockGW.EXPECT().PublishPickupEvent(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.CreateRequest(context.Background(), testSession(), req)

	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
}

func TestAcceptRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()
	scrapperID := uuid.New()
	scheduled := &models.PickupRequest{
		ID:         pickupID,
		ScrapperID: &scrapperID,
		Status:     models.PickupStatusScheduled,
	}

	mockRepo.EXPECT().AssignScrapper(gomock.Any(), pickupID, scrapperID).Return(true, nil)
	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(scheduled, nil)
	mockGW.EXPECT().
		PublishPickupEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PickupEvent) error {
			assert.Equal(t, models.PickupEventScheduled, event.Kind)
			return nil
		})

	result, err := uc.AcceptRequest(context.Background(), pickupID, scrapperID)

	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusScheduled, result.Status)
	require.NotNil(t, result.ScrapperID)
	assert.Equal(t, scrapperID, *result.ScrapperID)
}

func TestAcceptRequest_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()
	winner := uuid.New()

	mockRepo.EXPECT().AssignScrapper(gomock.Any(), pickupID, gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID:         pickupID,
		ScrapperID: &winner,
		Status:     models.PickupStatusScheduled,
	}, nil)

	result, err := uc.AcceptRequest(context.Background(), pickupID, uuid.New())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAcceptRequest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()

	mockRepo.EXPECT().AssignScrapper(gomock.Any(), pickupID, gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().
		GetPickup(gomock.Any(), pickupID).
		Return(nil, models.ErrNotFound)

	result, err := uc.AcceptRequest(context.Background(), pickupID, uuid.New())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// TestAcceptRequest_ConcurrentClaims drives several scrappers at the same
// pickup. The claim is modeled with a compare-and-swap the way the
// conditional update behaves on the database: exactly one accept wins.
func TestAcceptRequest_ConcurrentClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()
	const scrappers = 8

	var claimed int32
	var winnerID atomic.Value

	mockRepo.EXPECT().
		AssignScrapper(gomock.Any(), pickupID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, scrapperID uuid.UUID) (bool, error) {
			if atomic.CompareAndSwapInt32(&claimed, 0, 1) {
				winnerID.Store(scrapperID)
				return true, nil
			}
			return false, nil
		}).
		Times(scrappers)
	mockRepo.EXPECT().
		GetPickup(gomock.Any(), pickupID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.PickupRequest, error) {
			id := winnerID.Load().(uuid.UUID)
			return &models.PickupRequest{
				ID:         pickupID,
				ScrapperID: &id,
				Status:     models.PickupStatusScheduled,
			}, nil
		}).
		Times(scrappers)
	mockGW.EXPECT().PublishPickupEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	var wins, conflicts int32
	for i := 0; i < scrappers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AcceptRequest(context.Background(), pickupID, uuid.New())
			switch {
			case err == nil:
				atomic.AddInt32(&wins, 1)
			case errors.Is(err, models.ErrConflict):
				atomic.AddInt32(&conflicts, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, int32(scrappers-1), conflicts)
}

func TestRejectRequest_FromRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()

	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusRequested,
	}, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), pickupID, models.PickupStatusRequested, models.PickupStatusRejected, nil).
		Return(true, nil)
	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusRejected,
	}, nil)
	mockGW.EXPECT().
		PublishPickupEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PickupEvent) error {
			assert.Equal(t, models.PickupEventRejected, event.Kind)
			return nil
		})

	result, err := uc.RejectRequest(context.Background(), pickupID)

	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusRejected, result.Status)
}

func TestRejectRequest_AlreadyRejectedIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()

	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusRejected,
	}, nil)

	result, err := uc.RejectRequest(context.Background(), pickupID)

	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusRejected, result.Status)
}

func TestRejectRequest_CompletedIsIllegal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()

	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusCompleted,
	}, nil)

	result, err := uc.RejectRequest(context.Background(), pickupID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestAdvanceStatus_LegalStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()

	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusScheduled,
	}, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), pickupID, models.PickupStatusScheduled, models.PickupStatusEnRoute, nil).
		Return(true, nil)
	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusEnRoute,
	}, nil)
	mockGW.EXPECT().
		PublishPickupEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PickupEvent) error {
			assert.Equal(t, models.PickupEventStatus, event.Kind)
			return nil
		})

	result, err := uc.AdvanceStatus(context.Background(), pickupID, models.PickupStatusEnRoute, nil)

	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusEnRoute, result.Status)
}

func TestAdvanceStatus_CompleteWithPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()
	price := 240.0

	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusArrived, WeightKg: 12.5,
	}, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), pickupID, models.PickupStatusArrived, models.PickupStatusCompleted, &price).
		Return(true, nil)
	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusCompleted, WeightKg: 12.5, Price: &price,
	}, nil)
	mockGW.EXPECT().
		PublishPickupEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PickupEvent) error {
			assert.Equal(t, models.PickupEventCompleted, event.Kind)
			return nil
		})

	result, err := uc.AdvanceStatus(context.Background(), pickupID, models.PickupStatusCompleted, &price)

	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusCompleted, result.Status)
	require.NotNil(t, result.Price)
	assert.Equal(t, price, *result.Price)
}

func TestAdvanceStatus_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from models.PickupStatus
		to   models.PickupStatus
	}{
		{"requested to completed", models.PickupStatusRequested, models.PickupStatusCompleted},
		{"requested to en_route", models.PickupStatusRequested, models.PickupStatusEnRoute},
		{"en_route to completed", models.PickupStatusEnRoute, models.PickupStatusCompleted},
		{"en_route to rejected", models.PickupStatusEnRoute, models.PickupStatusRejected},
		{"completed to scheduled", models.PickupStatusCompleted, models.PickupStatusScheduled},
		{"rejected to requested", models.PickupStatusRejected, models.PickupStatusRequested},
		{"arrived to en_route", models.PickupStatusArrived, models.PickupStatusEnRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPickupRepo(ctrl)
			mockGW := mocks.NewMockPickupGW(ctrl)
			uc := NewPickupUC(mockRepo, mockGW, testConfig())

			pickupID := uuid.New()
			mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
				ID: pickupID, Status: tt.from,
			}, nil)

			result, err := uc.AdvanceStatus(context.Background(), pickupID, tt.to, nil)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, models.ErrInvalidTransition)
		})
	}
}

func TestAdvanceStatus_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	result, err := uc.AdvanceStatus(context.Background(), uuid.New(), models.PickupStatus("PAUSED"), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAdvanceStatus_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	pickupID := uuid.New()

	mockRepo.EXPECT().GetPickup(gomock.Any(), pickupID).Return(&models.PickupRequest{
		ID: pickupID, Status: models.PickupStatusScheduled,
	}, nil)
	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), pickupID, models.PickupStatusScheduled, models.PickupStatusEnRoute, nil).
		Return(false, nil)

	result, err := uc.AdvanceStatus(context.Background(), pickupID, models.PickupStatusEnRoute, nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestListRequestsForScrapper_DefaultsToRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		ListByPincodeAndStatus(gomock.Any(), "560034", models.PickupStatusRequested).
		Return([]*models.PickupRequest{}, nil)

	_, err := uc.ListRequestsForScrapper(context.Background(), "560034", "")

	assert.NoError(t, err)
}

func TestListRequestsForScrapper_InvalidPincode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPickupRepo(ctrl)
	mockGW := mocks.NewMockPickupGW(ctrl)
	uc := NewPickupUC(mockRepo, mockGW, testConfig())

	result, err := uc.ListRequestsForScrapper(context.Background(), "abc123", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrValidation)
}
