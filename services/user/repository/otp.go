package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// StoreOTP keeps the code in redis until it expires or is verified
func (r *UserRepo) StoreOTP(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserOTP, otp.Email)
	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: OTP already expired", models.ErrValidation)
	}

	if err := r.redis.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("%w: failed to store OTP: %v", models.ErrBackendUnavailable, err)
	}

	return nil
}

// GetOTP retrieves the pending code for an email
func (r *UserRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyUserOTP, email)

	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: no pending OTP for %s", models.ErrNotFound, email)
		}
		return nil, fmt.Errorf("%w: failed to get OTP: %v", models.ErrBackendUnavailable, err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(data), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP removes a code after verification
func (r *UserRepo) DeleteOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	if err := r.redis.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: failed to delete OTP: %v", models.ErrBackendUnavailable, err)
	}

	return nil
}
