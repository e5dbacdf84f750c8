package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// InsertLedgerEntry appends one immutable ledger row
func (r *PointsRepo) InsertLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()

	query := `
		INSERT INTO points (id, user_id, points, pickup_id, redemption_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Points, entry.PickupID, entry.RedemptionID, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert ledger entry: %v", models.ErrBackendUnavailable, err)
	}

	return nil
}

// SumBalance derives the balance from the ledger. COALESCE keeps an empty
// ledger at zero instead of a null sum.
func (r *PointsRepo) SumBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(SUM(points), 0) FROM points WHERE user_id = $1`

	var balance int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("%w: failed to sum balance: %v", models.ErrBackendUnavailable, err)
	}

	return balance, nil
}

// RedeemReward runs the redemption as one transaction. The user row lock
// serializes concurrent redemptions so the balance re-check under the lock
// is authoritative: of two racing double-spends at most one commits.
func (r *PointsRepo) RedeemReward(ctx context.Context, userID uuid.UUID, reward *models.Reward) (*models.Redemption, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", models.ErrBackendUnavailable, err)
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: failed to lock user: %v", models.ErrBackendUnavailable, err)
	}

	var balance int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(SUM(points), 0) FROM points WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sum balance: %v", models.ErrBackendUnavailable, err)
	}
	if balance < reward.PointsRequired {
		return nil, fmt.Errorf("%w: balance %d, reward requires %d", models.ErrInsufficientPoints, balance, reward.PointsRequired)
	}

	redemption := &models.Redemption{
		ID:        uuid.New(),
		UserID:    userID,
		RewardID:  reward.ID,
		CreatedAt: time.Now(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO redeemed_rewards (id, user_id, reward_id, created_at) VALUES ($1, $2, $3, $4)`,
		redemption.ID, redemption.UserID, redemption.RewardID, redemption.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert redemption: %v", models.ErrBackendUnavailable, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO points (id, user_id, points, redemption_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), userID, -reward.PointsRequired, redemption.ID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert ledger entry: %v", models.ErrBackendUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit redemption: %v", models.ErrBackendUnavailable, err)
	}

	return redemption, nil
}

// GetReward fetches one reward by ID
func (r *PointsRepo) GetReward(ctx context.Context, rewardID uuid.UUID) (*models.Reward, error) {
	query := `SELECT id, name, points_required, active, created_at FROM rewards WHERE id = $1`

	var reward models.Reward
	err := r.db.QueryRowContext(ctx, query, rewardID).Scan(
		&reward.ID, &reward.Name, &reward.PointsRequired, &reward.Active, &reward.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: reward %s", models.ErrNotFound, rewardID)
		}
		return nil, fmt.Errorf("%w: failed to get reward: %v", models.ErrBackendUnavailable, err)
	}

	return &reward, nil
}

// ListActiveRewards returns the redeemable catalog
func (r *PointsRepo) ListActiveRewards(ctx context.Context) ([]models.Reward, error) {
	query := `
		SELECT id, name, points_required, active, created_at
		FROM rewards
		WHERE active = true
		ORDER BY points_required ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list rewards: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	var rewards []models.Reward
	for rows.Next() {
		var reward models.Reward
		if err := rows.Scan(&reward.ID, &reward.Name, &reward.PointsRequired, &reward.Active, &reward.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan reward: %v", models.ErrBackendUnavailable, err)
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate rewards: %v", models.ErrBackendUnavailable, err)
	}

	return rewards, nil
}

// ListLedgerEntries returns the user's ledger newest first
func (r *PointsRepo) ListLedgerEntries(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error) {
	query := `
		SELECT id, user_id, points, pickup_id, redemption_id, created_at
		FROM points
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list ledger entries: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var (
			entry        models.LedgerEntry
			pickupID     uuid.NullUUID
			redemptionID uuid.NullUUID
		)
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Points, &pickupID, &redemptionID, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan ledger entry: %v", models.ErrBackendUnavailable, err)
		}
		if pickupID.Valid {
			entry.PickupID = &pickupID.UUID
		}
		if redemptionID.Valid {
			entry.RedemptionID = &redemptionID.UUID
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate ledger entries: %v", models.ErrBackendUnavailable, err)
	}

	return entries, nil
}
