package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scrapcycle/scrapcycle/internal/pkg/constants"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

const scrapperColumns = `user_id, pincode, available, vehicle_type, working_hours,
	materials, rating, latitude, longitude, geo_cell, created_at, updated_at`

// CreateScrapperProfile attaches a scrapper profile to an account
func (r *UserRepo) CreateScrapperProfile(ctx context.Context, profile *models.ScrapperProfile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO scrappers (user_id, pincode, available, vehicle_type, working_hours,
			materials, rating, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.UserID, profile.Pincode, profile.Available, profile.VehicleType,
		profile.WorkingHours, profile.Materials.Join(), profile.Rating,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert scrapper profile: %v", models.ErrBackendUnavailable, err)
	}

	return nil
}

// GetScrapperProfile retrieves a scrapper profile by user ID
func (r *UserRepo) GetScrapperProfile(ctx context.Context, userID uuid.UUID) (*models.ScrapperProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM scrappers WHERE user_id = $1`, scrapperColumns)

	profile, err := scanScrapper(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: scrapper profile for %s", models.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: failed to get scrapper profile: %v", models.ErrBackendUnavailable, err)
	}

	return profile, nil
}

// SetScrapperAvailability flips the availability flag. Deactivation is
// always soft; the profile row stays.
func (r *UserRepo) SetScrapperAvailability(ctx context.Context, userID uuid.UUID, available bool) error {
	query := `UPDATE scrappers SET available = $2, updated_at = $3 WHERE user_id = $1`

	res, err := r.db.ExecContext(ctx, query, userID, available, time.Now())
	if err != nil {
		return fmt.Errorf("%w: failed to set availability: %v", models.ErrBackendUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %v", models.ErrBackendUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: scrapper profile for %s", models.ErrNotFound, userID)
	}

	return nil
}

// UpdateScrapperLocation stores the position in postgres and mirrors it
// into the redis geo set. The redis write is best effort: the postgres row
// is the source of truth.
func (r *UserRepo) UpdateScrapperLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64, geoCell string) error {
	query := `
		UPDATE scrappers
		SET latitude = $2, longitude = $3, geo_cell = $4, updated_at = $5
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, latitude, longitude, geoCell, time.Now())
	if err != nil {
		return fmt.Errorf("%w: failed to update location: %v", models.ErrBackendUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %v", models.ErrBackendUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: scrapper profile for %s", models.ErrNotFound, userID)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyScrapperGeo, longitude, latitude, userID.String()); err != nil {
		logger.Warn("Failed to mirror scrapper position to redis",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}

	return nil
}

// ListScrappersByPincode returns available scrappers in an area
func (r *UserRepo) ListScrappersByPincode(ctx context.Context, pincode string) ([]models.ScrapperProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM scrappers
		WHERE pincode = $1 AND available = true
		ORDER BY rating DESC
	`, scrapperColumns)

	rows, err := r.db.QueryContext(ctx, query, pincode)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list scrappers: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	var profiles []models.ScrapperProfile
	for rows.Next() {
		profile, err := scanScrapper(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan scrapper: %v", models.ErrBackendUnavailable, err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate scrappers: %v", models.ErrBackendUnavailable, err)
	}

	return profiles, nil
}

// ListScrappersNearby resolves the scrapper positions within radiusKm of a
// point from the redis geo set, then loads the matching available profiles.
// Result order follows the redis distance order, closest first.
func (r *UserRepo) ListScrappersNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.ScrapperProfile, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyScrapperGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query scrapper positions: %v", models.ErrBackendUnavailable, err)
	}
	if len(locations) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(locations))
	for _, loc := range locations {
		ids = append(ids, loc.Name)
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM scrappers WHERE user_id IN (?) AND available = true`, scrapperColumns), ids)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build nearby query: %v", models.ErrBackendUnavailable, err)
	}
	query = r.db.Rebind(query)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list nearby scrappers: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	byID := make(map[string]models.ScrapperProfile, len(locations))
	for rows.Next() {
		profile, err := scanScrapper(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan scrapper: %v", models.ErrBackendUnavailable, err)
		}
		byID[profile.UserID.String()] = *profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate scrappers: %v", models.ErrBackendUnavailable, err)
	}

	profiles := make([]models.ScrapperProfile, 0, len(byID))
	for _, loc := range locations {
		if profile, ok := byID[loc.Name]; ok {
			profiles = append(profiles, profile)
		}
	}

	return profiles, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScrapper(row rowScanner) (*models.ScrapperProfile, error) {
	var (
		profile   models.ScrapperProfile
		materials string
		latitude  sql.NullFloat64
		longitude sql.NullFloat64
		geoCell   sql.NullString
	)
	if err := row.Scan(
		&profile.UserID,
		&profile.Pincode,
		&profile.Available,
		&profile.VehicleType,
		&profile.WorkingHours,
		&materials,
		&profile.Rating,
		&latitude,
		&longitude,
		&geoCell,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	profile.Materials = models.ParseMaterialSet(materials)
	if latitude.Valid {
		profile.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		profile.Longitude = &longitude.Float64
	}
	profile.GeoCell = geoCell.String

	return &profile, nil
}
