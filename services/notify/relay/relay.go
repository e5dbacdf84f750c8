package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	natspkg "github.com/scrapcycle/scrapcycle/internal/pkg/nats"
	wspkg "github.com/scrapcycle/scrapcycle/internal/pkg/websocket"
	"github.com/scrapcycle/scrapcycle/services/notify"
)

// Relay bridges the pickup change feed onto websocket clients. It holds an
// explicit subscription handle: Start subscribes, Stop drains. Events for
// clients that are not connected are dropped silently.
type Relay struct {
	natsClient *natspkg.Client
	manager    *wspkg.Manager
	lister     notify.PickupLister
	subs       []*nats.Subscription
}

// NewRelay creates a new notification relay
func NewRelay(natsClient *natspkg.Client, manager *wspkg.Manager, lister notify.PickupLister) *Relay {
	return &Relay{
		natsClient: natsClient,
		manager:    manager,
		lister:     lister,
		subs:       make([]*nats.Subscription, 0),
	}
}

// Start subscribes to the full pickup change feed
func (r *Relay) Start() error {
	sub, err := r.natsClient.Subscribe(constants.SubjectPickupAll, func(msg *nats.Msg) {
		var event models.PickupEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Error("Failed to unmarshal pickup event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
			return
		}
		r.HandlePickupEvent(context.Background(), &event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to pickup events: %w", err)
	}
	r.subs = append(r.subs, sub)

	logger.Info("Notification relay started", logger.String("subject", constants.SubjectPickupAll))

	return nil
}

// Stop drains all subscriptions
func (r *Relay) Stop() {
	for _, sub := range r.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	r.subs = r.subs[:0]
}

// HandlePickupEvent fans one change event out to the interested clients:
// the requester gets their refreshed pickup list, scrappers watching the
// pickup's area get the refreshed open-request list.
func (r *Relay) HandlePickupEvent(ctx context.Context, event *models.PickupEvent) {
	r.notifyRequester(ctx, event)
	r.notifyAreaScrappers(ctx, event)
}

func (r *Relay) notifyRequester(ctx context.Context, event *models.PickupEvent) {
	userID := event.Pickup.UserID.String()
	if _, connected := r.manager.GetClient(userID); !connected {
		return
	}

	pickups, err := r.lister.ListRequestsForUser(ctx, event.Pickup.UserID)
	if err != nil {
		logger.Warn("Failed to refresh user pickups",
			logger.String("user_id", userID),
			logger.Err(err))
		return
	}

	r.manager.NotifyClient(userID, constants.EventUserPickups, pickups)
	r.manager.NotifyClient(userID, requesterEvent(event.Kind), event.Pickup)

	if event.Kind == models.PickupEventCompleted {
		r.manager.NotifyClient(userID, constants.EventPointsAwarded, event.Pickup)
	}
}

func (r *Relay) notifyAreaScrappers(ctx context.Context, event *models.PickupEvent) {
	clients := r.manager.ScrappersForPincode(event.Pickup.Pincode)
	if len(clients) == 0 {
		return
	}

	pickups, err := r.lister.ListRequestsForScrapper(ctx, event.Pickup.Pincode, models.PickupStatusRequested)
	if err != nil {
		logger.Warn("Failed to refresh area pickups",
			logger.String("pincode", event.Pickup.Pincode),
			logger.Err(err))
		return
	}

	for _, client := range clients {
		if err := r.manager.SendMessage(client.Conn, constants.EventScrapperPickups, pickups); err != nil {
			logger.Warn("Failed to push area pickups",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

func requesterEvent(kind models.PickupEventKind) string {
	switch kind {
	case models.PickupEventCreated:
		return constants.EventPickupCreated
	case models.PickupEventScheduled:
		return constants.EventPickupScheduled
	case models.PickupEventRejected:
		return constants.EventPickupRejected
	case models.PickupEventCompleted:
		return constants.EventPickupCompleted
	default:
		return constants.EventPickupStatus
	}
}
