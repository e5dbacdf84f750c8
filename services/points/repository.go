package points

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/scrapcycle/scrapcycle/services/points PointsRepo

// PointsRepo represents the points repository interface
type PointsRepo interface {
	// InsertLedgerEntry appends one entry. Entries are never updated or
	// deleted afterwards.
	InsertLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error

	// SumBalance returns SUM(points) for the user, zero for an empty ledger.
	SumBalance(ctx context.Context, userID uuid.UUID) (int, error)

	// RedeemReward performs the redemption in one transaction: lock the
	// user row, re-check the balance, insert the redemption and its
	// negative ledger entry. Returns ErrInsufficientPoints when the
	// locked balance is short, so concurrent double-spends commit at
	// most once.
	RedeemReward(ctx context.Context, userID uuid.UUID, reward *models.Reward) (*models.Redemption, error)

	GetReward(ctx context.Context, rewardID uuid.UUID) (*models.Reward, error)
	ListActiveRewards(ctx context.Context) ([]models.Reward, error)
	ListLedgerEntries(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error)
}
