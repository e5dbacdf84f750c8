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

// CreateUser creates a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, fullname, phone, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FullName, user.Phone, user.PasswordHash,
		user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to insert user: %v", models.ErrBackendUnavailable, err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, fullname, phone, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.getUser(ctx, query, email)
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, fullname, phone, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.getUser(ctx, query, userID)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get user: %v", models.ErrBackendUnavailable, err)
	}

	if user.Role == models.RoleScrapper {
		profile, err := r.GetScrapperProfile(ctx, user.ID)
		if err == nil {
			user.Scrapper = profile
		} else if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
	}

	return &user, nil
}

// UpdateUserProfile applies the editable profile fields
func (r *UserRepo) UpdateUserProfile(ctx context.Context, userID uuid.UUID, profile *models.UserProfile) error {
	query := `
		UPDATE users
		SET fullname = $2, phone = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, profile.FullName, profile.Phone, time.Now())
	if err != nil {
		return fmt.Errorf("%w: failed to update profile: %v", models.ErrBackendUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %v", models.ErrBackendUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}

	return nil
}

// UpdateUserRole changes an account's role
func (r *UserRepo) UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `UPDATE users SET role = $2, updated_at = $3 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, userID, role, time.Now())
	if err != nil {
		return fmt.Errorf("%w: failed to update role: %v", models.ErrBackendUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read update result: %v", models.ErrBackendUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}

	return nil
}
