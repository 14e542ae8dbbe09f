package repositories

import (
	"context"

	"astroleap/internal/models"
)

// UnlocksRepository defines the interface for unlocked-cosmetics data access.
type UnlocksRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserUnlocks, error)
	Create(ctx context.Context, unlocks *models.UserUnlocks) error
	// AddToList appends value to the list column unless it is already present.
	AddToList(ctx context.Context, userID, column, value string) (bool, error)
}
