package repositories

import (
	"context"
	"errors"
	"fmt"

	"astroleap/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateRoom is returned when the room code is already taken.
var ErrDuplicateRoom = errors.New("room code already exists")

// GORMRoomRepository is a GORM implementation of RoomRepository.
type GORMRoomRepository struct {
	db *gorm.DB
}

// NewGORMRoomRepository creates a new instance of GORMRoomRepository.
func NewGORMRoomRepository(db *gorm.DB) *GORMRoomRepository {
	return &GORMRoomRepository{db: db}
}

// FirstAvailable returns any room still waiting for a second player.
func (r *GORMRoomRepository) FirstAvailable(ctx context.Context) (*models.MultiplayerRoom, error) {
	var room models.MultiplayerRoom
	err := r.db.WithContext(ctx).Where("player2_id IS NULL").Take(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("available room: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find available room: %w", err)
	}
	return &room, nil
}

// CreateAsHost deletes finished rooms hosted by the same player and inserts
// the new room, both in one transaction.
func (r *GORMRoomRepository) CreateAsHost(ctx context.Context, room *models.MultiplayerRoom) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("player1_id = ? AND player2_id IS NOT NULL", room.Player1ID).Delete(&models.MultiplayerRoom{})
		if res.Error != nil {
			return res.Error
		}

		var count int64
		if err := tx.Model(&models.MultiplayerRoom{}).Where("room_code = ?", room.RoomCode).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateRoom
		}

		room.Player2ID = nil
		return tx.Create(room).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create room %s: %w", room.RoomCode, err)
	}
	return nil
}

// SetPlayer2 seats the guest in the named room.
func (r *GORMRoomRepository) SetPlayer2(ctx context.Context, roomCode, player2ID string) error {
	res := r.db.WithContext(ctx).Model(&models.MultiplayerRoom{}).
		Where("room_code = ?", roomCode).
		Update("player2_id", player2ID)
	if res.Error != nil {
		return fmt.Errorf("failed to add player2 to room %s: %w", roomCode, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %s: %w", roomCode, ErrNotFound)
	}
	return nil
}

// Delete removes a room.
func (r *GORMRoomRepository) Delete(ctx context.Context, roomCode string) error {
	res := r.db.WithContext(ctx).Where("room_code = ?", roomCode).Delete(&models.MultiplayerRoom{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %s: %w", roomCode, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %s: %w", roomCode, ErrNotFound)
	}
	return nil
}

// GetByCode returns a room by its code.
func (r *GORMRoomRepository) GetByCode(ctx context.Context, roomCode string) (*models.MultiplayerRoom, error) {
	var room models.MultiplayerRoom
	if err := r.db.WithContext(ctx).First(&room, "room_code = ?", roomCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %s: %w", roomCode, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get room %s: %w", roomCode, err)
	}
	return &room, nil
}
