package repositories

import (
	"context"

	"astroleap/internal/models"
)

// Leaderboard columns.
const (
	ColumnTrophies          = "trophies"
	ColumnMaxMetersTraveled = "max_meters_traveled"
)

// CompetitiveRepository defines the interface for leaderboard data access.
type CompetitiveRepository interface {
	GetAll(ctx context.Context) ([]models.UserCompetitive, error)
	GetByUserID(ctx context.Context, userID string) (*models.UserCompetitive, error)
	Create(ctx context.Context, row *models.UserCompetitive) error
	// Update overwrites the given columns. It does not report missing rows.
	Update(ctx context.Context, userID string, values map[string]interface{}) error
	Top(ctx context.Context, column string, limit int) ([]models.UserCompetitive, error)
}
