package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/internal/utils"
)

// GetProfile returns the account with its scrapper profile when present
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies editable profile fields
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, profile *models.UserProfile) (*models.User, error) {
	if profile.FullName == "" {
		return nil, fmt.Errorf("%w: fullname is required", models.ErrValidation)
	}
	if profile.Pincode != "" && !utils.IsValidPincode(profile.Pincode) {
		return nil, fmt.Errorf("%w: pincode must be a six digit area code", models.ErrValidation)
	}

	if err := uc.userRepo.UpdateUserProfile(ctx, userID, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return uc.userRepo.GetUserByID(ctx, userID)
}

// RegisterScrapper attaches a scrapper profile to an existing account and
// promotes its role. Scrappers start available.
func (uc *UserUC) RegisterScrapper(ctx context.Context, userID uuid.UUID, req *models.RegisterScrapperRequest) (*models.ScrapperProfile, error) {
	if !utils.IsValidPincode(req.Pincode) {
		return nil, fmt.Errorf("%w: pincode must be a six digit area code", models.ErrValidation)
	}
	materials := models.NewMaterialSet(req.Materials)
	if materials.IsEmpty() {
		return nil, fmt.Errorf("%w: at least one accepted material is required", models.ErrValidation)
	}

	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	if existing, err := uc.userRepo.GetScrapperProfile(ctx, userID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: scrapper profile already exists", models.ErrConflict)
	}

	profile := &models.ScrapperProfile{
		UserID:       userID,
		Pincode:      req.Pincode,
		Available:    true,
		VehicleType:  req.VehicleType,
		WorkingHours: req.WorkingHours,
		Materials:    materials,
	}
	if err := uc.userRepo.CreateScrapperProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create scrapper profile: %w", err)
	}
	if err := uc.userRepo.UpdateUserRole(ctx, userID, models.RoleScrapper); err != nil {
		return nil, fmt.Errorf("failed to promote user role: %w", err)
	}

	logger.Info("Scrapper registered",
		logger.String("user_id", userID.String()),
		logger.String("pincode", req.Pincode))

	return profile, nil
}

// SetAvailability soft-deactivates or reactivates a scrapper. Profiles are
// never hard-deleted.
func (uc *UserUC) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	if _, err := uc.userRepo.GetScrapperProfile(ctx, userID); err != nil {
		return err
	}
	return uc.userRepo.SetScrapperAvailability(ctx, userID, available)
}

// UpdateLocation records a position ping: coordinates in postgres plus a
// geohash cell for coarse area grouping, and the redis geo set for radius
// queries.
func (uc *UserUC) UpdateLocation(ctx context.Context, userID uuid.UUID, ping *models.LocationPing) error {
	if ping.Latitude < -90 || ping.Latitude > 90 || ping.Longitude < -180 || ping.Longitude > 180 {
		return fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}

	cell := utils.EncodeGeoCell(ping.Latitude, ping.Longitude)
	if err := uc.userRepo.UpdateScrapperLocation(ctx, userID, ping.Latitude, ping.Longitude, cell); err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}

	return nil
}

// ListScrappersByPincode returns available scrappers in an area
func (uc *UserUC) ListScrappersByPincode(ctx context.Context, pincode string) ([]models.ScrapperProfile, error) {
	if !utils.IsValidPincode(pincode) {
		return nil, fmt.Errorf("%w: pincode must be a six digit area code", models.ErrValidation)
	}
	return uc.userRepo.ListScrappersByPincode(ctx, pincode)
}

// maxNearbyRadiusKm caps the redis geo query so one request cannot sweep
// the whole set.
const maxNearbyRadiusKm = 50.0

// ListScrappersNearby returns available scrappers within a radius of a
// point, closest first. This is an informational map view; matching stays
// on exact pincode.
func (uc *UserUC) ListScrappersNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.ScrapperProfile, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	}
	if radiusKm <= 0 || radiusKm > maxNearbyRadiusKm {
		return nil, fmt.Errorf("%w: radius must be between 0 and %.0f km", models.ErrValidation, maxNearbyRadiusKm)
	}
	return uc.userRepo.ListScrappersNearby(ctx, latitude, longitude, radiusKm)
}
