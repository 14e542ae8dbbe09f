package repositories

import (
	"context"
	"fmt"
	"time"

	"astroleap/internal/models"

	"gorm.io/gorm"
)

// GORMUserShopRepository is a GORM implementation of UserShopRepository.
type GORMUserShopRepository struct {
	db *gorm.DB
}

// NewGORMUserShopRepository creates a new instance of GORMUserShopRepository.
func NewGORMUserShopRepository(db *gorm.DB) *GORMUserShopRepository {
	return &GORMUserShopRepository{db: db}
}

// GetShopIDsByUser returns the offer IDs assigned to a user.
func (r *GORMUserShopRepository) GetShopIDsByUser(ctx context.Context, userID string) ([]int, error) {
	ids := make([]int, 0)
	err := r.db.WithContext(ctx).Model(&models.UserShop{}).
		Where("id_user = ?", userID).
		Order("id_shop").
		Pluck("id_shop", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get offers for user %s: %w", userID, err)
	}
	return ids, nil
}

// GetAll returns every user/offer relation.
func (r *GORMUserShopRepository) GetAll(ctx context.Context) ([]models.UserShop, error) {
	rows := make([]models.UserShop, 0)
	if err := r.db.WithContext(ctx).Order("id_user, id_shop").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get user offers: %w", err)
	}
	return rows, nil
}

// Create inserts a new relation; it fails if the pair already exists.
func (r *GORMUserShopRepository) Create(ctx context.Context, userShop *models.UserShop) error {
	if err := r.db.WithContext(ctx).Create(userShop).Error; err != nil {
		return fmt.Errorf("failed to create user offer: %w", err)
	}
	return nil
}

// UpdateTimeToSpin replaces the cooldown of an existing relation.
func (r *GORMUserShopRepository) UpdateTimeToSpin(ctx context.Context, userShop *models.UserShop) error {
	err := r.db.WithContext(ctx).Model(&models.UserShop{}).
		Where("id_user = ? AND id_shop = ?", userShop.IDUser, userShop.IDShop).
		Update("time_to_spin", userShop.TimeToSpin).Error
	if err != nil {
		return fmt.Errorf("failed to update time_to_spin: %w", err)
	}
	return nil
}

// Delete removes a relation.
func (r *GORMUserShopRepository) Delete(ctx context.Context, userID string, idShop int) error {
	err := r.db.WithContext(ctx).
		Where("id_user = ? AND id_shop = ?", userID, idShop).
		Delete(&models.UserShop{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete user offer: %w", err)
	}
	return nil
}

// Reconcile snapshots the live set and the user's set inside one transaction,
// inserts what is missing and deletes what is no longer live.
func (r *GORMUserShopRepository) Reconcile(ctx context.Context, userID string, timeToSpin time.Time) ([]int, []int, error) {
	var added, removed []int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var live, have []int
		if err := tx.Model(&models.CurrentShop{}).Distinct().Pluck("id_shop", &live).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.UserShop{}).Where("id_user = ?", userID).Pluck("id_shop", &have).Error; err != nil {
			return err
		}

		added = difference(live, have)
		removed = difference(have, live)

		for _, id := range added {
			row := models.UserShop{IDUser: userID, IDShop: id, TimeToSpin: timeToSpin}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if len(removed) > 0 {
			err := tx.Where("id_user = ? AND id_shop IN ?", userID, removed).Delete(&models.UserShop{}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reconcile offers for user %s: %w", userID, err)
	}
	return added, removed, nil
}

// difference returns the distinct elements of a that are not in b.
func difference(a, b []int) []int {
	exclude := make(map[int]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}
	out := make([]int, 0)
	for _, v := range a {
		if _, ok := exclude[v]; ok {
			continue
		}
		exclude[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
