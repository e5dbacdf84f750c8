package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// PickupRepo implements the pickup repository interface over postgres
type PickupRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPickupRepo creates a new pickup repository instance
func NewPickupRepo(cfg *models.Config, db *sqlx.DB) *PickupRepo {
	return &PickupRepo{
		cfg: cfg,
		db:  db,
	}
}
