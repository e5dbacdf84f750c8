package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/scrapcycle/scrapcycle/internal/pkg/database"
	"github.com/scrapcycle/scrapcycle/internal/pkg/models"
)

// UserRepo implements the user repository interface. Accounts and scrapper
// profiles live in postgres; OTP codes and the scrapper geo set in redis.
type UserRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *UserRepo {
	return &UserRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}
