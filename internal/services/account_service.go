package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
)

// Selectable user columns.
const (
	ColumnIconSelected   = "icon_selected"
	ColumnBannerSelected = "banner_selected"
	ColumnSkinSelected   = "skin_selected"
	ColumnAnimVictory    = "anim_victory"
	ColumnAnimLose       = "anim_lose"
	ColumnName           = "name"
	ColumnAurumMoney     = "num_aurum_money"
	ColumnVorenMoney     = "num_voren_money"
)

// AccountService handles player accounts.
type AccountService struct {
	userRepo repositories.UserRepository
	offers   *UserShopService
}

// NewAccountService creates a new AccountService. offers may be nil, in
// which case email lookups skip offer reconciliation.
func NewAccountService(userRepo repositories.UserRepository, offers *UserShopService) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		offers:   offers,
	}
}

// GetAllUsers retrieves all users.
func (s *AccountService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUserByID retrieves a single user.
func (s *AccountService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user and brings their offers in line with the
// live rotation.
func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if s.offers != nil {
		if _, _, err := s.offers.Reconcile(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// EmailExists reports whether an account uses email.
func (s *AccountService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userRepo.ExistsByEmail(ctx, email)
}

// CreateUser stores a new account together with its default unlocks and
// leaderboard row.
func (s *AccountService) CreateUser(ctx context.Context, user *models.User) error {
	user.Name = models.TruncateName(user.Name)
	for _, field := range []*string{&user.IconSelected, &user.BannerSelected, &user.SkinSelected, &user.AnimVictory, &user.AnimLose} {
		if *field == "" {
			*field = models.None
		}
	}

	unlocks := models.NewDefaultUnlocks(user.ID)
	competitive := &models.UserCompetitive{IDUser: user.ID}
	if err := s.userRepo.Create(ctx, user, unlocks, competitive); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}
	log.Printf("Created user %s with default unlocks and competitive row", user.ID)
	return nil
}

// UpdateSelection sets one of the cosmetic selection columns.
func (s *AccountService) UpdateSelection(ctx context.Context, id, column, value string) error {
	switch column {
	case ColumnIconSelected, ColumnBannerSelected, ColumnSkinSelected, ColumnAnimVictory, ColumnAnimLose:
	default:
		return fmt.Errorf("column %q is not a cosmetic selection", column)
	}
	return s.userRepo.UpdateColumn(ctx, id, column, value)
}

// UpdateName renames a user, truncating to the maximum display length.
func (s *AccountService) UpdateName(ctx context.Context, id, name string) error {
	return s.userRepo.UpdateColumn(ctx, id, ColumnName, models.TruncateName(name))
}

// UpdateAurum overwrites the aurum balance.
func (s *AccountService) UpdateAurum(ctx context.Context, id string, amount int) error {
	return s.userRepo.UpdateColumn(ctx, id, ColumnAurumMoney, amount)
}

// UpdateVoren overwrites the voren balance.
func (s *AccountService) UpdateVoren(ctx context.Context, id string, amount int) error {
	return s.userRepo.UpdateColumn(ctx, id, ColumnVorenMoney, amount)
}

// GetAurum returns the aurum balance.
func (s *AccountService) GetAurum(ctx context.Context, id string) (int, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return user.NumAurumMoney, nil
}

// GetVoren returns the voren balance.
func (s *AccountService) GetVoren(ctx context.Context, id string) (int, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return user.NumVorenMoney, nil
}

// UpdatePassword stores a new plaintext password. Accounts whose password is
// NONE are rejected with ErrPasswordLocked.
func (s *AccountService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.HasLocalPassword() {
		log.Printf("[SECURITY] Rejected password change for external account %s", email)
		return ErrPasswordLocked
	}
	return s.userRepo.UpdatePasswordByEmail(ctx, email, newPassword)
}

// VerifyPassword compares password with the stored one. Unknown emails and
// NONE accounts never authenticate.
func (s *AccountService) VerifyPassword(ctx context.Context, email, password string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if user.Password == nil || !user.HasLocalPassword() {
		return false, nil
	}
	return *user.Password == password, nil
}
