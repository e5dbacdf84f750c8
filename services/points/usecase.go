package points

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/scrapcycle/scrapcycle/services/points PointsUC

// PointsUC represents the points ledger usecase interface
type PointsUC interface {
	// AwardPoints writes one immutable ledger entry worth
	// floor(weightKg * points-per-kg) points.
	AwardPoints(ctx context.Context, userID, pickupID uuid.UUID, weightKg float64) (*models.LedgerEntry, error)

	// Balance derives the current balance by summing the ledger.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)

	// ComputeImpact converts recycled weight into environmental figures.
	// Unknown materials degrade to an all-zero result, never an error.
	ComputeImpact(material string, kg float64) models.Impact

	RedeemReward(ctx context.Context, userID, rewardID uuid.UUID) (*models.Redemption, error)
	ListRewards(ctx context.Context) ([]models.Reward, error)
	History(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error)
}
