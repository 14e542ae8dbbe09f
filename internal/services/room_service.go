package services

import (
	"context"
	"errors"
	"fmt"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
)

// RoomService pairs players into two-seat rooms.
type RoomService struct {
	repo repositories.RoomRepository
}

// NewRoomService creates a new RoomService.
func NewRoomService(repo repositories.RoomRepository) *RoomService {
	return &RoomService{repo: repo}
}

// FindFirstAvailable returns a room waiting for a guest, or nil if none.
func (s *RoomService) FindFirstAvailable(ctx context.Context) (*models.MultiplayerRoom, error) {
	room, err := s.repo.FirstAvailable(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	return room, err
}

// CreateAsHost opens a room for player1, removing their finished rooms first.
func (s *RoomService) CreateAsHost(ctx context.Context, roomCode, player1ID string) (*models.MultiplayerRoom, error) {
	room := &models.MultiplayerRoom{RoomCode: roomCode, Player1ID: player1ID}
	if err := s.repo.CreateAsHost(ctx, room); err != nil {
		if errors.Is(err, repositories.ErrDuplicateRoom) {
			return nil, fmt.Errorf("%w: %s", ErrRoomExists, roomCode)
		}
		return nil, err
	}
	return room, nil
}

// JoinAsGuest seats player2 in the room.
func (s *RoomService) JoinAsGuest(ctx context.Context, roomCode, player2ID string) error {
	return s.repo.SetPlayer2(ctx, roomCode, player2ID)
}

// Delete removes the room.
func (s *RoomService) Delete(ctx context.Context, roomCode string) error {
	return s.repo.Delete(ctx, roomCode)
}

// Get returns the room.
func (s *RoomService) Get(ctx context.Context, roomCode string) (*models.MultiplayerRoom, error) {
	return s.repo.GetByCode(ctx, roomCode)
}
