package repositories

import (
	"context"

	"astroleap/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create inserts the user together with its unlocks and competitive rows.
	Create(ctx context.Context, user *models.User, unlocks *models.UserUnlocks, competitive *models.UserCompetitive) error
	UpdateColumn(ctx context.Context, id string, column string, value interface{}) error
	UpdatePasswordByEmail(ctx context.Context, email, password string) error
}
