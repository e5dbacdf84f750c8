package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/database"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

func setupOTPRepoTest(t *testing.T) (*UserRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	repo := &UserRepo{
		cfg:   &models.Config{},
		redis: &database.RedisClient{Client: client},
	}

	return repo, mr
}

func TestStoreAndGetOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	now := time.Now()
	otp := &models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}

	err := repo.StoreOTP(context.Background(), otp)
	require.NoError(t, err)

	// Key carries a TTL
	key := fmt.Sprintf(constants.KeyUserOTP, otp.Email)
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	got, err := repo.GetOTP(context.Background(), otp.Email)
	require.NoError(t, err)
	assert.Equal(t, otp.Code, got.Code)
	assert.Equal(t, otp.Email, got.Email)
}

func TestGetOTP_Missing(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	got, err := repo.GetOTP(context.Background(), "ghost@example.com")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetOTP_ExpiredByTTL(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	now := time.Now()
	otp := &models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}
	require.NoError(t, repo.StoreOTP(context.Background(), otp))

	// Advance miniredis past the TTL
	mr.FastForward(2 * time.Minute)

	got, err := repo.GetOTP(context.Background(), otp.Email)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteOTP_VerifiesOnce(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	now := time.Now()
	otp := &models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
	require.NoError(t, repo.StoreOTP(context.Background(), otp))
	require.NoError(t, repo.DeleteOTP(context.Background(), otp.Email))

	_, err := repo.GetOTP(context.Background(), otp.Email)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStoreOTP_AlreadyExpired(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	otp := &models.OTP{
		Email:     "resident@example.com",
		Code:      "402913",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	err := repo.StoreOTP(context.Background(), otp)
	assert.ErrorIs(t, err, models.ErrValidation)
}
