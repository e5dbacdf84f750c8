package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/metrics"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
)

const dateLayout = "2006-01-02"

// CreateRequest validates and persists a new pickup request, then looks up
// the eligible scrappers for its area. Matching is advisory: no scrapper is
// assigned here, assignment happens via AcceptRequest.
func (uc *PickupUC) CreateRequest(ctx context.Context, session *models.Session, req *models.CreatePickupRequest) (*models.CreatePickupResponse, error) {
	if req.WeightKg < uc.cfg.Pickup.MinWeightKg {
		return nil, fmt.Errorf("%w: weight must be at least %.0f kg", models.ErrValidation, uc.cfg.Pickup.MinWeightKg)
	}
	if !utils.IsValidPincode(req.Pincode) {
		return nil, fmt.Errorf("%w: pincode must be a six digit area code", models.ErrValidation)
	}
	if req.Address == "" {
		return nil, fmt.Errorf("%w: address is required", models.ErrValidation)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", models.ErrValidation)
	}
	today, _ := time.Parse(dateLayout, time.Now().UTC().Format(dateLayout))
	if date.Before(today) {
		return nil, fmt.Errorf("%w: pickup date cannot be in the past", models.ErrValidation)
	}

	slot, ok := models.ParseTimeSlot(req.TimeSlot)
	if !ok {
		return nil, fmt.Errorf("%w: unknown time slot %q", models.ErrValidation, req.TimeSlot)
	}
	if slot.EndedBy(date, time.Now().UTC()) {
		return nil, fmt.Errorf("%w: time slot for that date has already ended", models.ErrValidation)
	}

	materials := models.NewMaterialSet(req.Materials)
	if materials.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one material type is required", models.ErrValidation)
	}

	pickup := &models.PickupRequest{
		ID:        uuid.New(),
		UserID:    session.UserID,
		WeightKg:  req.WeightKg,
		Address:   req.Address,
		Pincode:   req.Pincode,
		Date:      date,
		TimeSlot:  slot,
		Materials: materials,
		Status:    models.PickupStatusRequested,
	}

	if err := uc.pickupRepo.CreatePickup(ctx, pickup); err != nil {
		return nil, fmt.Errorf("failed to create pickup: %w", err)
	}
	metrics.PickupsCreated.Inc()

	candidates, err := uc.pickupRepo.ListCandidateScrappers(ctx, pickup.Pincode, uc.cfg.Pickup.CandidateCap)
	if err != nil {
		// The pickup is already persisted; candidates are advisory only.
		logger.Warn("Failed to list candidate scrappers",
			logger.String("pickup_id", pickup.ID.String()),
			logger.String("pincode", pickup.Pincode),
			logger.Err(err))
		candidates = nil
	}

	uc.publishEvent(ctx, models.PickupEventCreated, pickup)

	return &models.CreatePickupResponse{
		Pickup:     pickup,
		Candidates: candidates,
	}, nil
}

// AcceptRequest claims a pickup for a scrapper. The claim is a conditional
// update guarded by status REQUESTED; under concurrent acceptance exactly
// one caller wins and the rest receive a conflict.
func (uc *PickupUC) AcceptRequest(ctx context.Context, pickupID, scrapperID uuid.UUID) (*models.PickupRequest, error) {
	claimed, err := uc.pickupRepo.AssignScrapper(ctx, pickupID, scrapperID)
	if err != nil {
		return nil, fmt.Errorf("failed to accept pickup: %w", err)
	}

	if !claimed {
		current, err := uc.pickupRepo.GetPickup(ctx, pickupID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: pickup is already %s", models.ErrConflict, current.Status)
	}

	pickup, err := uc.pickupRepo.GetPickup(ctx, pickupID)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.PickupEventScheduled, pickup)

	return pickup, nil
}

// RejectRequest moves a pickup to REJECTED. Rejecting an already rejected
// pickup is a success no-op; rejecting a completed pickup is illegal.
func (uc *PickupUC) RejectRequest(ctx context.Context, pickupID uuid.UUID) (*models.PickupRequest, error) {
	current, err := uc.pickupRepo.GetPickup(ctx, pickupID)
	if err != nil {
		return nil, err
	}

	if current.Status == models.PickupStatusRejected {
		return current, nil
	}
	if !current.Status.CanTransition(models.PickupStatusRejected) {
		return nil, fmt.Errorf("%w: cannot reject a pickup in status %s", models.ErrInvalidTransition, current.Status)
	}

	moved, err := uc.pickupRepo.UpdateStatus(ctx, pickupID, current.Status, models.PickupStatusRejected, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to reject pickup: %w", err)
	}
	if !moved {
		// Lost a race. If the winner also rejected, stay idempotent.
		current, err = uc.pickupRepo.GetPickup(ctx, pickupID)
		if err != nil {
			return nil, err
		}
		if current.Status == models.PickupStatusRejected {
			return current, nil
		}
		return nil, fmt.Errorf("%w: pickup moved to %s concurrently", models.ErrConflict, current.Status)
	}

	pickup, err := uc.pickupRepo.GetPickup(ctx, pickupID)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, models.PickupEventRejected, pickup)

	return pickup, nil
}

// AdvanceStatus moves a pickup along the lifecycle. Only forward
// transitions are accepted; the update is conditional on the expected
// prior status so concurrent advances cannot skip or repeat steps.
func (uc *PickupUC) AdvanceStatus(ctx context.Context, pickupID uuid.UUID, next models.PickupStatus, price *float64) (*models.PickupRequest, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, next)
	}

	current, err := uc.pickupRepo.GetPickup(ctx, pickupID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, current.Status, next)
	}

	moved, err := uc.pickupRepo.UpdateStatus(ctx, pickupID, current.Status, next, price)
	if err != nil {
		return nil, fmt.Errorf("failed to advance pickup: %w", err)
	}
	if !moved {
		return nil, fmt.Errorf("%w: pickup status changed concurrently", models.ErrConflict)
	}

	pickup, err := uc.pickupRepo.GetPickup(ctx, pickupID)
	if err != nil {
		return nil, err
	}

	kind := models.PickupEventStatus
	if next == models.PickupStatusCompleted {
		kind = models.PickupEventCompleted
		metrics.PickupsCompleted.Inc()
	}
	uc.publishEvent(ctx, kind, pickup)

	return pickup, nil
}

// GetRequest returns a single pickup by ID
func (uc *PickupUC) GetRequest(ctx context.Context, pickupID uuid.UUID) (*models.PickupRequest, error) {
	return uc.pickupRepo.GetPickup(ctx, pickupID)
}

// ListRequestsForScrapper returns pickups in the scrapper's area filtered
// by status, oldest first so scrappers see first-come-first-served order.
func (uc *PickupUC) ListRequestsForScrapper(ctx context.Context, pincode string, status models.PickupStatus) ([]*models.PickupRequest, error) {
	if !utils.IsValidPincode(pincode) {
		return nil, fmt.Errorf("%w: pincode must be a six digit area code", models.ErrValidation)
	}
	if status == "" {
		status = models.PickupStatusRequested
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrValidation, status)
	}

	return uc.pickupRepo.ListByPincodeAndStatus(ctx, pincode, status)
}

// ListRequestsForUser returns all pickups created by the given user
func (uc *PickupUC) ListRequestsForUser(ctx context.Context, userID uuid.UUID) ([]*models.PickupRequest, error) {
	return uc.pickupRepo.ListByUser(ctx, userID)
}

// publishEvent pushes the change onto the realtime bus. Publish failures
// are logged, not propagated: the state change is already durable.
func (uc *PickupUC) publishEvent(ctx context.Context, kind models.PickupEventKind, pickup *models.PickupRequest) {
	event := &models.PickupEvent{Kind: kind, Pickup: *pickup}
	if err := uc.pickupGW.PublishPickupEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish pickup event",
			logger.String("pickup_id", pickup.ID.String()),
			logger.String("kind", string(kind)),
			logger.Err(err))
	}
}
