package repositories

import (
	"context"
	"time"

	"astroleap/internal/models"
)

// ShopRepository defines the interface for shop catalog data access.
type ShopRepository interface {
	GetAll(ctx context.Context) ([]models.ShopItem, error)
	GetByID(ctx context.Context, id int) (*models.ShopItem, error)
	Create(ctx context.Context, item *models.ShopItem) error
}

// CurrentShopRepository defines the interface for the live offer set.
type CurrentShopRepository interface {
	GetAllIDs(ctx context.Context) ([]int, error)
	Add(ctx context.Context, idShop int) error
}

// UserShopRepository defines the interface for per-user offer assignments.
type UserShopRepository interface {
	GetShopIDsByUser(ctx context.Context, userID string) ([]int, error)
	GetAll(ctx context.Context) ([]models.UserShop, error)
	Create(ctx context.Context, userShop *models.UserShop) error
	UpdateTimeToSpin(ctx context.Context, userShop *models.UserShop) error
	Delete(ctx context.Context, userID string, idShop int) error
	// Reconcile makes the user's offers equal the live set. New rows get
	// timeToSpin as their cooldown.
	Reconcile(ctx context.Context, userID string, timeToSpin time.Time) (added, removed []int, err error)
}
