package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// PointsRepo implements the points repository interface over postgres
type PointsRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPointsRepo creates a new points repository instance
func NewPointsRepo(cfg *models.Config, db *sqlx.DB) *PointsRepo {
	return &PointsRepo{
		cfg: cfg,
		db:  db,
	}
}
