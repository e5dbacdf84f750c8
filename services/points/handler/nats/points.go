package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	natspkg "github.com/scrapcycle/scrapcycle/internal/pkg/nats"
	"github.com/scrapcycle/scrapcycle/services/points"
)

// PointsHandler consumes pickup completion events and awards points
type PointsHandler struct {
	pointsUC   points.PointsUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewPointsHandler creates a new points NATS handler
func NewPointsHandler(pointsUC points.PointsUC, client *natspkg.Client) *PointsHandler {
	return &PointsHandler{
		pointsUC:   pointsUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to pickup completion events
func (h *PointsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectPickupCompleted, func(msg *nats.Msg) {
		if err := h.handlePickupCompleted(msg.Data); err != nil {
			logger.Error("Error handling pickup completed event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to pickup completed events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handlePickupCompleted awards points to the requester for the completed
// pickup's weight
func (h *PointsHandler) handlePickupCompleted(msg []byte) error {
	var event models.PickupEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.Error("Failed to unmarshal pickup event", logger.Err(err))
		return err
	}

	logger.Info("Received pickup completed event",
		logger.String("pickup_id", event.Pickup.ID.String()),
		logger.String("user_id", event.Pickup.UserID.String()),
		logger.Float64("weight_kg", event.Pickup.WeightKg))

	_, err := h.pointsUC.AwardPoints(context.Background(), event.Pickup.UserID, event.Pickup.ID, event.Pickup.WeightKg)
	return err
}
