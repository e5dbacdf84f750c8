package pickup

import (
	"context"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/scrapcycle/scrapcycle/services/pickup PickupUC

// PickupUC represents the pickup lifecycle usecase interface
type PickupUC interface {
	// lifecycle
	CreateRequest(ctx context.Context, session *models.Session, req *models.CreatePickupRequest) (*models.CreatePickupResponse, error)
	AcceptRequest(ctx context.Context, pickupID, scrapperID uuid.UUID) (*models.PickupRequest, error)
	RejectRequest(ctx context.Context, pickupID uuid.UUID) (*models.PickupRequest, error)
	AdvanceStatus(ctx context.Context, pickupID uuid.UUID, next models.PickupStatus, price *float64) (*models.PickupRequest, error)

	// reads
	GetRequest(ctx context.Context, pickupID uuid.UUID) (*models.PickupRequest, error)
	ListRequestsForScrapper(ctx context.Context, pincode string, status models.PickupStatus) ([]*models.PickupRequest, error)
	ListRequestsForUser(ctx context.Context, userID uuid.UUID) ([]*models.PickupRequest, error)
}
