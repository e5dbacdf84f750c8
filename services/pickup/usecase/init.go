package usecase

import (
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/pickup"
)

type PickupUC struct {
	pickupRepo pickup.PickupRepo
	pickupGW   pickup.PickupGW
	cfg        *models.Config
}

// NewPickupUC creates a new pickup usecase instance
func NewPickupUC(
	pickupRepo pickup.PickupRepo,
	pickupGW pickup.PickupGW,
	cfg *models.Config,
) *PickupUC {
	return &PickupUC{
		pickupRepo: pickupRepo,
		pickupGW:   pickupGW,
		cfg:        cfg,
	}
}
