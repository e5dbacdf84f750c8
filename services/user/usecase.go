package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/scrapcycle/scrapcycle/services/user UserUC

// UserUC represents the user/auth usecase interface
type UserUC interface {
	// auth
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GenerateOTP(ctx context.Context, email string) (*models.OTP, error)
	VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error)

	// profiles
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, profile *models.UserProfile) (*models.User, error)

	// scrapper lifecycle
	RegisterScrapper(ctx context.Context, userID uuid.UUID, req *models.RegisterScrapperRequest) (*models.ScrapperProfile, error)
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error
	UpdateLocation(ctx context.Context, userID uuid.UUID, ping *models.LocationPing) error
	ListScrappersByPincode(ctx context.Context, pincode string) ([]models.ScrapperProfile, error)
	ListScrappersNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.ScrapperProfile, error)
}
