package repositories

import (
	"context"
	"errors"
	"fmt"

	"astroleap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUnlocksRepository is a GORM implementation of UnlocksRepository.
type GORMUnlocksRepository struct {
	db *gorm.DB
}

// NewGORMUnlocksRepository creates a new instance of GORMUnlocksRepository.
func NewGORMUnlocksRepository(db *gorm.DB) *GORMUnlocksRepository {
	return &GORMUnlocksRepository{db: db}
}

// GetByUserID retrieves the unlock lists of a user.
func (r *GORMUnlocksRepository) GetByUserID(ctx context.Context, userID string) (*models.UserUnlocks, error) {
	var unlocks models.UserUnlocks
	if err := r.db.WithContext(ctx).First(&unlocks, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unlocks for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get unlocks for user %s: %w", userID, err)
	}
	return &unlocks, nil
}

// Create inserts a full unlocks row.
func (r *GORMUnlocksRepository) Create(ctx context.Context, unlocks *models.UserUnlocks) error {
	if err := r.db.WithContext(ctx).Create(unlocks).Error; err != nil {
		return fmt.Errorf("failed to create unlocks: %w", err)
	}
	return nil
}

// AddToList reads the list under a row lock, appends value if absent and
// rewrites the whole column. A missing unlocks row is treated as an empty
// list and nothing is written.
func (r *GORMUnlocksRepository) AddToList(ctx context.Context, userID, column, value string) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unlocks models.UserUnlocks
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("user_id", column).
			First(&unlocks, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		current, ok := unlocks.List(column)
		if !ok {
			return fmt.Errorf("unknown unlock column %q", column)
		}
		next, appended := current.AppendUnique(value)
		if !appended {
			return nil
		}
		added = true
		return tx.Model(&models.UserUnlocks{}).Where("user_id = ?", userID).Update(column, next).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to add %s to %s for user %s: %w", value, column, userID, err)
	}
	return added, nil
}
