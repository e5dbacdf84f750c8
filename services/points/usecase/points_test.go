package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/points/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Pickup: models.PickupConfig{
			MinWeightKg: 7.0,
			PointsPerKg: 10,
		},
	}
}

func TestAwardPoints_FloorsFractionalWeight(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		want     int
	}{
		{"whole weight", 12.0, 120},
		{"fraction floors down", 12.5, 125},
		{"fraction below point", 7.09, 70},
		{"minimum weight", 7.0, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPointsRepo(ctrl)
			uc := NewPointsUC(mockRepo, testConfig())

			userID := uuid.New()
			pickupID := uuid.New()

			var inserts int32
			mockRepo.EXPECT().
				InsertLedgerEntry(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, entry *models.LedgerEntry) error {
					atomic.AddInt32(&inserts, 1)
					assert.Equal(t, userID, entry.UserID)
					assert.Equal(t, tt.want, entry.Points)
					require.NotNil(t, entry.PickupID)
					assert.Equal(t, pickupID, *entry.PickupID)
					assert.Nil(t, entry.RedemptionID)
					return nil
				})

			entry, err := uc.AwardPoints(context.Background(), userID, pickupID, tt.weightKg)

			require.NoError(t, err)
			assert.Equal(t, tt.want, entry.Points)
			assert.Equal(t, int32(1), inserts)
		})
	}
}

func TestAwardPoints_RejectsNonPositiveWeight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	entry, err := uc.AwardPoints(context.Background(), uuid.New(), uuid.New(), 0)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestComputeImpact_Paper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	impact := uc.ComputeImpact(models.MaterialPaper, 1000)

	assert.Equal(t, 17, impact.TreesSaved)
	assert.Equal(t, 3000.0, impact.CO2Reduction)
	assert.Equal(t, 7000.0, impact.EnergySaved)
}

func TestComputeImpact_PaperFractionOfTon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	impact := uc.ComputeImpact(models.MaterialPaper, 500)

	// Trees floor to whole trees; the other figures stay fractional
	assert.Equal(t, 8, impact.TreesSaved)
	assert.Equal(t, 1500.0, impact.CO2Reduction)
	assert.Equal(t, 3500.0, impact.EnergySaved)
}

func TestComputeImpact_UnknownMaterialIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	impact := uc.ComputeImpact("styrofoam", 500)

	assert.Equal(t, models.Impact{}, impact)
}

func TestRedeemReward_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	userID := uuid.New()
	reward := &models.Reward{ID: uuid.New(), Name: "tote bag", PointsRequired: 200, Active: true}
	redemption := &models.Redemption{ID: uuid.New(), UserID: userID, RewardID: reward.ID}

	mockRepo.EXPECT().GetReward(gomock.Any(), reward.ID).Return(reward, nil)
	mockRepo.EXPECT().RedeemReward(gomock.Any(), userID, reward).Return(redemption, nil)

	result, err := uc.RedeemReward(context.Background(), userID, reward.ID)

	require.NoError(t, err)
	assert.Equal(t, redemption.ID, result.ID)
}

func TestRedeemReward_InactiveReward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	reward := &models.Reward{ID: uuid.New(), Name: "retired mug", PointsRequired: 100, Active: false}

	mockRepo.EXPECT().GetReward(gomock.Any(), reward.ID).Return(reward, nil)

	result, err := uc.RedeemReward(context.Background(), uuid.New(), reward.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRedeemReward_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	userID := uuid.New()
	reward := &models.Reward{ID: uuid.New(), Name: "bicycle", PointsRequired: 5000, Active: true}

	mockRepo.EXPECT().GetReward(gomock.Any(), reward.ID).Return(reward, nil)
	mockRepo.EXPECT().RedeemReward(gomock.Any(), userID, reward).Return(nil, models.ErrInsufficientPoints)

	result, err := uc.RedeemReward(context.Background(), userID, reward.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInsufficientPoints)
}

// TestRedeemReward_ConcurrentDoubleSpend models the repository's row lock
// with a mutex-guarded balance: of two racing redemptions draining the
// same balance, at most one commits.
func TestRedeemReward_ConcurrentDoubleSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	userID := uuid.New()
	reward := &models.Reward{ID: uuid.New(), Name: "tote bag", PointsRequired: 200, Active: true}

	var mu sync.Mutex
	balance := 200

	mockRepo.EXPECT().GetReward(gomock.Any(), reward.ID).Return(reward, nil).Times(2)
	mockRepo.EXPECT().
		RedeemReward(gomock.Any(), userID, reward).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rw *models.Reward) (*models.Redemption, error) {
			mu.Lock()
			defer mu.Unlock()
			if balance < rw.PointsRequired {
				return nil, models.ErrInsufficientPoints
			}
			balance -= rw.PointsRequired
			return &models.Redemption{ID: uuid.New(), UserID: userID, RewardID: rw.ID}, nil
		}).
		Times(2)

	var wg sync.WaitGroup
	var succeeded, rejected int32
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RedeemReward(context.Background(), userID, reward.ID)
			if err == nil {
				atomic.AddInt32(&succeeded, 1)
			} else {
				atomic.AddInt32(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded)
	assert.Equal(t, int32(1), rejected)
	assert.GreaterOrEqual(t, balance, 0)
}

func TestBalance_DelegatesToLedgerSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPointsRepo(ctrl)
	uc := NewPointsUC(mockRepo, testConfig())

	userID := uuid.New()
	mockRepo.EXPECT().SumBalance(gomock.Any(), userID).Return(340, nil)

	balance, err := uc.Balance(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 340, balance)
}
