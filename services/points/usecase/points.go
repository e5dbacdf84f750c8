package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/metrics"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// impactFactor holds per-ton conversion figures for one material
type impactFactor struct {
	treesPerTon  float64
	co2PerTon    float64
	energyPerTon float64
}

// impactFactors is the fixed equivalence table, keyed by material type.
// Figures are per metric ton of recycled material.
var impactFactors = map[string]impactFactor{
	models.MaterialPaper:   {treesPerTon: 17, co2PerTon: 3000, energyPerTon: 7000},
	models.MaterialPlastic: {treesPerTon: 0, co2PerTon: 2500, energyPerTon: 5800},
	models.MaterialMetal:   {treesPerTon: 0, co2PerTon: 4000, energyPerTon: 14000},
	models.MaterialGlass:   {treesPerTon: 0, co2PerTon: 300, energyPerTon: 1200},
	models.MaterialEWaste:  {treesPerTon: 0, co2PerTon: 1500, energyPerTon: 9000},
}

// AwardPoints writes one immutable ledger entry for a completed pickup.
// The award is floor(weightKg * points-per-kg); the balance is never
// stored, only derived.
func (uc *PointsUC) AwardPoints(ctx context.Context, userID, pickupID uuid.UUID, weightKg float64) (*models.LedgerEntry, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", models.ErrValidation)
	}

	points := int(math.Floor(weightKg * float64(uc.cfg.Pickup.PointsPerKg)))
	entry := &models.LedgerEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Points:   points,
		PickupID: &pickupID,
	}

	if err := uc.pointsRepo.InsertLedgerEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to award points: %w", err)
	}
	metrics.PointsAwarded.Add(float64(points))

	logger.Info("Points awarded",
		logger.String("user_id", userID.String()),
		logger.String("pickup_id", pickupID.String()),
		logger.Int("points", points))

	return entry, nil
}

// Balance sums the user's ledger
func (uc *PointsUC) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	return uc.pointsRepo.SumBalance(ctx, userID)
}

// ComputeImpact converts recycled kilograms into environmental
// equivalents using the per-ton factor table. An unknown material type
// degrades to an all-zero result with a warning rather than an error.
func (uc *PointsUC) ComputeImpact(material string, kg float64) models.Impact {
	factor, ok := impactFactors[material]
	if !ok {
		logger.Warn("Unknown material type for impact computation",
			logger.String("material", material),
			logger.Float64("kg", kg))
		return models.Impact{}
	}

	tons := kg / 1000
	return models.Impact{
		TreesSaved:   int(math.Floor(tons * factor.treesPerTon)),
		CO2Reduction: tons * factor.co2PerTon,
		EnergySaved:  tons * factor.energyPerTon,
	}
}

// RedeemReward claims an active reward. The balance check and both writes
// happen inside one repository transaction so a concurrent double-spend
// commits at most once.
func (uc *PointsUC) RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*models.Redemption, error) {
	reward, err := uc.pointsRepo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.Active {
		return nil, fmt.Errorf("%w: reward %s is not active", models.ErrNotFound, rewardID)
	}

	redemption, err := uc.pointsRepo.RedeemReward(ctx, userID, reward)
	if err != nil {
		return nil, err
	}
	metrics.RewardsRedeemed.Inc()

	logger.Info("Reward redeemed",
		logger.String("user_id", userID.String()),
		logger.String("reward_id", rewardID.String()),
		logger.Int("points", reward.PointsRequired))

	return redemption, nil
}

// ListRewards returns the active reward catalog
func (uc *PointsUC) ListRewards(ctx context.Context) ([]models.Reward, error) {
	return uc.pointsRepo.ListActiveRewards(ctx)
}

// History returns the user's ledger entries newest first
func (uc *PointsUC) History(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error) {
	return uc.pointsRepo.ListLedgerEntries(ctx, userID)
}
