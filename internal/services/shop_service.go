package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"astroleap/internal/models"
	"astroleap/internal/repositories"

	"gorm.io/datatypes"
)

// OfferCooldownOffset backdates the cooldown of newly assigned offers so
// they are usable immediately.
const OfferCooldownOffset = 24 * time.Hour

// ShopService manages the shop catalog.
type ShopService struct {
	repo repositories.ShopRepository
}

// NewShopService creates a new ShopService.
func NewShopService(repo repositories.ShopRepository) *ShopService {
	return &ShopService{repo: repo}
}

// GetAllItems lists the catalog.
func (s *ShopService) GetAllItems(ctx context.Context) ([]models.ShopItem, error) {
	return s.repo.GetAll(ctx)
}

// GetItemByID retrieves one catalog item.
func (s *ShopService) GetItemByID(ctx context.Context, id int) (*models.ShopItem, error) {
	return s.repo.GetByID(ctx, id)
}

// AddItem lists a new item. Missing elements default to an empty list.
func (s *ShopService) AddItem(ctx context.Context, typeOffer string, elements datatypes.JSON) (*models.ShopItem, error) {
	if len(elements) == 0 || string(elements) == "null" {
		elements = datatypes.JSON("[]")
	}
	item := &models.ShopItem{TypeOffer: typeOffer, ElementsOffer: elements}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add shop item: %w", err)
	}
	return item, nil
}

// CurrentShopService manages the live offer rotation.
type CurrentShopService struct {
	repo repositories.CurrentShopRepository
}

// NewCurrentShopService creates a new CurrentShopService.
func NewCurrentShopService(repo repositories.CurrentShopRepository) *CurrentShopService {
	return &CurrentShopService{repo: repo}
}

// GetLiveIDs lists the ids in rotation.
func (s *CurrentShopService) GetLiveIDs(ctx context.Context) ([]int, error) {
	return s.repo.GetAllIDs(ctx)
}

// AddLiveID puts a catalog id into rotation. Duplicates are not checked.
func (s *CurrentShopService) AddLiveID(ctx context.Context, idShop int) error {
	return s.repo.Add(ctx, idShop)
}

// UserShopService manages per-user offer assignments.
type UserShopService struct {
	repo repositories.UserShopRepository
	now  func() time.Time
}

// NewUserShopService creates a new UserShopService.
func NewUserShopService(repo repositories.UserShopRepository) *UserShopService {
	return &UserShopService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// GetOfferIDs lists the offer ids assigned to a user.
func (s *UserShopService) GetOfferIDs(ctx context.Context, userID string) ([]int, error) {
	return s.repo.GetShopIDsByUser(ctx, userID)
}

// GetAll lists every assignment.
func (s *UserShopService) GetAll(ctx context.Context) ([]models.UserShop, error) {
	return s.repo.GetAll(ctx)
}

// Assign creates an assignment; it fails if the pair already exists.
func (s *UserShopService) Assign(ctx context.Context, userShop *models.UserShop) error {
	return s.repo.Create(ctx, userShop)
}

// SetTimeToSpin replaces the cooldown of an existing assignment.
func (s *UserShopService) SetTimeToSpin(ctx context.Context, userShop *models.UserShop) error {
	return s.repo.UpdateTimeToSpin(ctx, userShop)
}

// Unassign removes an assignment.
func (s *UserShopService) Unassign(ctx context.Context, userID string, idShop int) error {
	return s.repo.Delete(ctx, userID, idShop)
}

// Reconcile makes the user's offers equal the live rotation. New offers get
// a cooldown in the past.
func (s *UserShopService) Reconcile(ctx context.Context, userID string) (added, removed []int, err error) {
	added, removed, err = s.repo.Reconcile(ctx, userID, s.now().Add(-OfferCooldownOffset))
	if err != nil {
		return nil, nil, err
	}
	if len(added) > 0 || len(removed) > 0 {
		log.Printf("Reconciled offers for user %s: added %v, removed %v", userID, added, removed)
	}
	return added, removed, nil
}
