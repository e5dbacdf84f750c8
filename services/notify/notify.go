package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_lister.go -package=mocks github.com/scrapcycle/scrapcycle/services/notify PickupLister

// PickupLister is the slice of the pickup usecase the relay re-fetches
// through. On every change event the relay pushes a full list refresh, not
// an incremental patch.
type PickupLister interface {
	ListRequestsForScrapper(ctx context.Context, pincode string, status models.PickupStatus) ([]*models.PickupRequest, error)
	ListRequestsForUser(ctx context.Context, userID uuid.UUID) ([]*models.PickupRequest, error)
}
