package usecase

import (
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
	"github.com/scrapcycle/scrapcycle/services/points"
)

type PointsUC struct {
	pointsRepo points.PointsRepo
	cfg        *models.Config
}

// NewPointsUC creates a new points usecase instance
func NewPointsUC(pointsRepo points.PointsRepo, cfg *models.Config) *PointsUC {
	return &PointsUC{
		pointsRepo: pointsRepo,
		cfg:        cfg,
	}
}
