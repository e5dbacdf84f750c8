package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/scrapcycle/scrapcycle/services/user UserRepo

// UserRepo represents the user repository interface. Accounts and scrapper
// profiles live in postgres; OTP codes and scrapper positions live in redis.
type UserRepo interface {
	// users
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, profile *models.UserProfile) error
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) error

	// scrappers
	CreateScrapperProfile(ctx context.Context, profile *models.ScrapperProfile) error
	GetScrapperProfile(ctx context.Context, userID uuid.UUID) (*models.ScrapperProfile, error)
	SetScrapperAvailability(ctx context.Context, userID uuid.UUID, available bool) error
	UpdateScrapperLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64, geoCell string) error
	ListScrappersByPincode(ctx context.Context, pincode string) ([]models.ScrapperProfile, error)
	ListScrappersNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.ScrapperProfile, error)

	// one-time codes
	StoreOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, email string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, email string) error
}
