package repositories

import (
	"context"
	"errors"
	"fmt"

	"astroleap/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCompetitiveRepository is a GORM implementation of CompetitiveRepository.
type GORMCompetitiveRepository struct {
	db *gorm.DB
}

// NewGORMCompetitiveRepository creates a new instance of GORMCompetitiveRepository.
func NewGORMCompetitiveRepository(db *gorm.DB) *GORMCompetitiveRepository {
	return &GORMCompetitiveRepository{db: db}
}

// GetAll returns every leaderboard row.
func (r *GORMCompetitiveRepository) GetAll(ctx context.Context) ([]models.UserCompetitive, error) {
	rows := make([]models.UserCompetitive, 0)
	if err := r.db.WithContext(ctx).Order("id_user").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get competitive rows: %w", err)
	}
	return rows, nil
}

// GetByUserID returns one user's leaderboard row.
func (r *GORMCompetitiveRepository) GetByUserID(ctx context.Context, userID string) (*models.UserCompetitive, error) {
	var row models.UserCompetitive
	if err := r.db.WithContext(ctx).First(&row, "id_user = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("competitive row for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get competitive row for user %s: %w", userID, err)
	}
	return &row, nil
}

// Create inserts a leaderboard row; duplicates fail on the primary key.
func (r *GORMCompetitiveRepository) Create(ctx context.Context, row *models.UserCompetitive) error {
	// Select all columns so zero values are written rather than left to defaults.
	if err := r.db.WithContext(ctx).Select("*").Create(row).Error; err != nil {
		return fmt.Errorf("failed to create competitive row: %w", err)
	}
	return nil
}

// Update overwrites the given columns.
func (r *GORMCompetitiveRepository) Update(ctx context.Context, userID string, values map[string]interface{}) error {
	err := r.db.WithContext(ctx).Model(&models.UserCompetitive{}).
		Where("id_user = ?", userID).
		Updates(values).Error
	if err != nil {
		return fmt.Errorf("failed to update competitive row for user %s: %w", userID, err)
	}
	return nil
}

// Top returns the first limit rows by column, descending. Ties are broken by
// id_user so the ranking is stable between calls.
func (r *GORMCompetitiveRepository) Top(ctx context.Context, column string, limit int) ([]models.UserCompetitive, error) {
	if column != ColumnTrophies && column != ColumnMaxMetersTraveled {
		return nil, fmt.Errorf("unsupported leaderboard column %q", column)
	}
	rows := make([]models.UserCompetitive, 0, limit)
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}).
		Order("id_user").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top %d by %s: %w", limit, column, err)
	}
	return rows, nil
}
