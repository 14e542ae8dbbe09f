package repositories

import (
	"context"
	"errors"
	"fmt"

	"astroleap/internal/models"

	"gorm.io/gorm"
)

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{db: db}
}

// GetAll retrieves every catalog item.
func (r *GORMShopRepository) GetAll(ctx context.Context) ([]models.ShopItem, error) {
	items := make([]models.ShopItem, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get shop items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single catalog item.
func (r *GORMShopRepository) GetByID(ctx context.Context, id int) (*models.ShopItem, error) {
	var item models.ShopItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop item %d: %w", id, err)
	}
	return &item, nil
}

// Create lists a new catalog item; the ID is assigned by the store.
func (r *GORMShopRepository) Create(ctx context.Context, item *models.ShopItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create shop item: %w", err)
	}
	return nil
}

// GORMCurrentShopRepository is a GORM implementation of CurrentShopRepository.
type GORMCurrentShopRepository struct {
	db *gorm.DB
}

// NewGORMCurrentShopRepository creates a new instance of GORMCurrentShopRepository.
func NewGORMCurrentShopRepository(db *gorm.DB) *GORMCurrentShopRepository {
	return &GORMCurrentShopRepository{db: db}
}

// GetAllIDs returns the shop IDs currently live.
func (r *GORMCurrentShopRepository) GetAllIDs(ctx context.Context) ([]int, error) {
	ids := make([]int, 0)
	if err := r.db.WithContext(ctx).Model(&models.CurrentShop{}).Order("id").Pluck("id_shop", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get current shop: %w", err)
	}
	return ids, nil
}

// Add puts a shop ID into rotation. Duplicates are not checked.
func (r *GORMCurrentShopRepository) Add(ctx context.Context, idShop int) error {
	if err := r.db.WithContext(ctx).Create(&models.CurrentShop{IDShop: idShop}).Error; err != nil {
		return fmt.Errorf("failed to add %d to current shop: %w", idShop, err)
	}
	return nil
}
