package pickup

import (
	"context"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/scrapcycle/scrapcycle/services/pickup PickupGW

// PickupGW publishes pickup change events to the realtime bus
type PickupGW interface {
	PublishPickupEvent(ctx context.Context, event *models.PickupEvent) error
}
