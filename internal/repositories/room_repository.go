package repositories

import (
	"context"

	"astroleap/internal/models"
)

// RoomRepository defines the interface for multiplayer room data access.
type RoomRepository interface {
	FirstAvailable(ctx context.Context) (*models.MultiplayerRoom, error)
	// CreateAsHost removes the host's complete rooms and opens a new one.
	CreateAsHost(ctx context.Context, room *models.MultiplayerRoom) error
	SetPlayer2(ctx context.Context, roomCode, player2ID string) error
	Delete(ctx context.Context, roomCode string) error
	GetByCode(ctx context.Context, roomCode string) (*models.MultiplayerRoom, error)
}
