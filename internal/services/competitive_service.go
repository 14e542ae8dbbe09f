package services

import (
	"context"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
)

// Leaderboard sizes.
const (
	TopShort = 5
	TopLong  = 10
)

// CompetitiveUpdate carries the leaderboard fields to overwrite. Nil fields
// are left untouched.
type CompetitiveUpdate struct {
	Trophies          *int
	MaxMetersTraveled *float64
}

// CompetitiveService manages leaderboard rows.
type CompetitiveService struct {
	repo repositories.CompetitiveRepository
}

// NewCompetitiveService creates a new CompetitiveService.
func NewCompetitiveService(repo repositories.CompetitiveRepository) *CompetitiveService {
	return &CompetitiveService{repo: repo}
}

// Create inserts a row; a duplicate user id fails.
func (s *CompetitiveService) Create(ctx context.Context, row *models.UserCompetitive) error {
	return s.repo.Create(ctx, row)
}

// Get returns one user's row.
func (s *CompetitiveService) Get(ctx context.Context, userID string) (*models.UserCompetitive, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// List returns every row.
func (s *CompetitiveService) List(ctx context.Context) ([]models.UserCompetitive, error) {
	return s.repo.GetAll(ctx)
}

// Update overwrites the fields that are set.
func (s *CompetitiveService) Update(ctx context.Context, userID string, update CompetitiveUpdate) error {
	values := make(map[string]interface{}, 2)
	if update.Trophies != nil {
		values[repositories.ColumnTrophies] = *update.Trophies
	}
	if update.MaxMetersTraveled != nil {
		values[repositories.ColumnMaxMetersTraveled] = *update.MaxMetersTraveled
	}
	if len(values) == 0 {
		return ErrNothingToUpdate
	}
	return s.repo.Update(ctx, userID, values)
}

// SetTrophies overwrites the trophy count.
func (s *CompetitiveService) SetTrophies(ctx context.Context, userID string, trophies int) error {
	return s.Update(ctx, userID, CompetitiveUpdate{Trophies: &trophies})
}

// SetMeters overwrites the best distance.
func (s *CompetitiveService) SetMeters(ctx context.Context, userID string, meters float64) error {
	return s.Update(ctx, userID, CompetitiveUpdate{MaxMetersTraveled: &meters})
}

// TopTrophies returns the limit best rows by trophies.
func (s *CompetitiveService) TopTrophies(ctx context.Context, limit int) ([]models.UserCompetitive, error) {
	return s.repo.Top(ctx, repositories.ColumnTrophies, limit)
}

// TopMeters returns the limit best rows by distance.
func (s *CompetitiveService) TopMeters(ctx context.Context, limit int) ([]models.UserCompetitive, error) {
	return s.repo.Top(ctx, repositories.ColumnMaxMetersTraveled, limit)
}
