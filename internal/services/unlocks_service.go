package services

import (
	"context"
	"fmt"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
)

// UnlocksService manages the cosmetics each user has unlocked.
type UnlocksService struct {
	repo repositories.UnlocksRepository
}

// NewUnlocksService creates a new UnlocksService.
func NewUnlocksService(repo repositories.UnlocksRepository) *UnlocksService {
	return &UnlocksService{repo: repo}
}

// GetUnlocks returns every unlock list for a user.
func (s *UnlocksService) GetUnlocks(ctx context.Context, userID string) (*models.UserUnlocks, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// AddUnlocks inserts a complete unlocks row as given. Nil lists are stored empty.
func (s *UnlocksService) AddUnlocks(ctx context.Context, unlocks *models.UserUnlocks) error {
	for _, list := range []*models.StringList{&unlocks.IconProfile, &unlocks.BannerProfile, &unlocks.SkinsUnlock, &unlocks.AnimVictory, &unlocks.AnimLose} {
		if *list == nil {
			*list = models.StringList{}
		}
	}
	return s.repo.Create(ctx, unlocks)
}

// Unlock appends value to the named list unless it is already there. It
// reports whether the list changed; a user without an unlocks row is a no-op.
func (s *UnlocksService) Unlock(ctx context.Context, userID, column, value string) (bool, error) {
	switch column {
	case models.UnlockIconProfile, models.UnlockBannerProfile, models.UnlockSkinsUnlock,
		models.UnlockAnimVictory, models.UnlockAnimLose:
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownList, column)
	}
	return s.repo.AddToList(ctx, userID, column, value)
}
