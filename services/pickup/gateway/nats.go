package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	natspkg "github.com/scrapcycle/scrapcycle/internal/pkg/nats"
)

// PickupGW publishes pickup change events over NATS
type PickupGW struct {
	natsClient *natspkg.Client
}

// NewPickupGW creates a new pickup gateway instance
func NewPickupGW(natsClient *natspkg.Client) *PickupGW {
	return &PickupGW{natsClient: natsClient}
}

var subjectByKind = map[models.PickupEventKind]string{
	models.PickupEventCreated:   constants.SubjectPickupCreated,
	models.PickupEventScheduled: constants.SubjectPickupScheduled,
	models.PickupEventRejected:  constants.SubjectPickupRejected,
	models.PickupEventStatus:    constants.SubjectPickupStatus,
	models.PickupEventCompleted: constants.SubjectPickupCompleted,
}

// PublishPickupEvent publishes the event on the subject matching its kind
func (g *PickupGW) PublishPickupEvent(_ context.Context, event *models.PickupEvent) error {
	subject, ok := subjectByKind[event.Kind]
	if !ok {
		return fmt.Errorf("%w: unknown pickup event kind %q", models.ErrValidation, event.Kind)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal pickup event: %w", err)
	}

	return g.natsClient.Publish(subject, data)
}
