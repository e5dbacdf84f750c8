package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

const pickupColumns = `id, user_id, scrapper_id, weight_kg, address, pincode,
	pickup_date, time_slot, materials, status, price, created_at, updated_at`

// CreatePickup inserts a new pickup request. The material set is stored
// comma-joined; that encoding never leaves this layer.
func (r *PickupRepo) CreatePickup(ctx context.Context, pickup *models.PickupRequest) error {
	if pickup.ID == uuid.Nil {
		pickup.ID = uuid.New()
	}
	now := time.Now()
	pickup.CreatedAt = now
	pickup.UpdatedAt = now

	query := `
		INSERT INTO pickups (id, user_id, weight_kg, address, pincode,
			pickup_date, time_slot, materials, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		pickup.ID,
		pickup.UserID,
		pickup.WeightKg,
		pickup.Address,
		pickup.Pincode,
		pickup.Date,
		pickup.TimeSlot,
		pickup.Materials.Join(),
		pickup.Status,
		pickup.CreatedAt,
		pickup.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert pickup: %v", models.ErrBackendUnavailable, err)
	}

	return nil
}

// GetPickup retrieves a pickup by ID
func (r *PickupRepo) GetPickup(ctx context.Context, pickupID uuid.UUID) (*models.PickupRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM pickups WHERE id = $1`, pickupColumns)

	pickup, err := scanPickup(r.db.QueryRowContext(ctx, query, pickupID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: pickup %s", models.ErrNotFound, pickupID)
		}
		return nil, fmt.Errorf("%w: failed to get pickup: %v", models.ErrBackendUnavailable, err)
	}

	return pickup, nil
}

// AssignScrapper claims a pickup with a conditional update. The guard on
// status REQUESTED serializes concurrent acceptance on the database.
func (r *PickupRepo) AssignScrapper(ctx context.Context, pickupID, scrapperID uuid.UUID) (bool, error) {
	query := `
		UPDATE pickups
		SET scrapper_id = $2, status = $3, updated_at = $4
		WHERE id = $1 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		pickupID, scrapperID, models.PickupStatusScheduled, time.Now(), models.PickupStatusRequested)
	if err != nil {
		return false, fmt.Errorf("%w: failed to assign scrapper: %v", models.ErrBackendUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to read update result: %v", models.ErrBackendUnavailable, err)
	}

	return affected == 1, nil
}

// UpdateStatus performs a guarded status transition. Price only changes
// when a non-nil price is supplied (completion with a final quote).
func (r *PickupRepo) UpdateStatus(ctx context.Context, pickupID uuid.UUID, from, to models.PickupStatus, price *float64) (bool, error) {
	query := `
		UPDATE pickups
		SET status = $3, price = COALESCE($4, price), updated_at = $5
		WHERE id = $1 AND status = $2
	`
	res, err := r.db.ExecContext(ctx, query, pickupID, from, to, price, time.Now())
	if err != nil {
		return false, fmt.Errorf("%w: failed to update pickup status: %v", models.ErrBackendUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to read update result: %v", models.ErrBackendUnavailable, err)
	}

	return affected == 1, nil
}

// ListByPincodeAndStatus returns area pickups oldest first
func (r *PickupRepo) ListByPincodeAndStatus(ctx context.Context, pincode string, status models.PickupStatus) ([]*models.PickupRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM pickups
		WHERE pincode = $1 AND status = $2
		ORDER BY created_at ASC
	`, pickupColumns)

	rows, err := r.db.QueryContext(ctx, query, pincode, status)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list pickups: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	return collectPickups(rows)
}

// ListByUser returns all pickups created by a user, oldest first
func (r *PickupRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.PickupRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM pickups
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, pickupColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list pickups: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	return collectPickups(rows)
}

// ListCandidateScrappers returns available scrappers in an area, best
// rated first.
func (r *PickupRepo) ListCandidateScrappers(ctx context.Context, pincode string, limit int) ([]models.ScrapperProfile, error) {
	query := `
		SELECT s.user_id, s.pincode, s.available, s.vehicle_type, s.working_hours,
			s.materials, s.rating, s.latitude, s.longitude, s.geo_cell,
			s.created_at, s.updated_at
		FROM scrappers s
		JOIN users u ON u.id = s.user_id
		WHERE s.pincode = $1 AND s.available = true AND u.is_active = true
		ORDER BY s.rating DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, pincode, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list candidate scrappers: %v", models.ErrBackendUnavailable, err)
	}
	defer rows.Close()

	var candidates []models.ScrapperProfile
	for rows.Next() {
		var (
			profile   models.ScrapperProfile
			materials string
			latitude  sql.NullFloat64
			longitude sql.NullFloat64
			geoCell   sql.NullString
		)
		if err := rows.Scan(
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
			return nil, fmt.Errorf("%w: failed to scan scrapper: %v", models.ErrBackendUnavailable, err)
		}
		profile.Materials = models.ParseMaterialSet(materials)
		if latitude.Valid {
			profile.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			profile.Longitude = &longitude.Float64
		}
		profile.GeoCell = geoCell.String
		candidates = append(candidates, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate scrappers: %v", models.ErrBackendUnavailable, err)
	}

	return candidates, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPickup(row rowScanner) (*models.PickupRequest, error) {
	var (
		pickup     models.PickupRequest
		scrapperID uuid.NullUUID
		materials  string
		price      sql.NullFloat64
	)
	if err := row.Scan(
		&pickup.ID,
		&pickup.UserID,
		&scrapperID,
		&pickup.WeightKg,
		&pickup.Address,
		&pickup.Pincode,
		&pickup.Date,
		&pickup.TimeSlot,
		&materials,
		&pickup.Status,
		&price,
		&pickup.CreatedAt,
		&pickup.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if scrapperID.Valid {
		pickup.ScrapperID = &scrapperID.UUID
	}
	if price.Valid {
		pickup.Price = &price.Float64
	}
	pickup.Materials = models.ParseMaterialSet(materials)

	return &pickup, nil
}

func collectPickups(rows *sql.Rows) ([]*models.PickupRequest, error) {
	var pickups []*models.PickupRequest
	for rows.Next() {
		pickup, err := scanPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan pickup: %v", models.ErrBackendUnavailable, err)
		}
		pickups = append(pickups, pickup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate pickups: %v", models.ErrBackendUnavailable, err)
	}

	return pickups, nil
}
