package pickup

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/scrapcycle/scrapcycle/services/pickup PickupRepo

// PickupRepo represents the pickup repository interface
type PickupRepo interface {
	CreatePickup(ctx context.Context, pickup *models.PickupRequest) error
	GetPickup(ctx context.Context, pickupID uuid.UUID) (*models.PickupRequest, error)

	// AssignScrapper claims a pickup for a scrapper with a conditional
	// update guarded by status REQUESTED. It reports false when no row
	// matched, either because the pickup is absent or already claimed.
	AssignScrapper(ctx context.Context, pickupID, scrapperID uuid.UUID) (bool, error)

	// UpdateStatus moves a pickup from -> to with a conditional update on
	// the expected prior status. It reports false when no row matched.
	UpdateStatus(ctx context.Context, pickupID uuid.UUID, from, to models.PickupStatus, price *float64) (bool, error)

	ListByPincodeAndStatus(ctx context.Context, pincode string, status models.PickupStatus) ([]*models.PickupRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.PickupRequest, error)

	// ListCandidateScrappers returns the available scrappers registered in
	// the given postal area, best rated first.
	ListCandidateScrappers(ctx context.Context, pincode string, limit int) ([]models.ScrapperProfile, error)
}
