package services_test

import (
	"context"
	"fmt"
	"testing"

	"astroleap/internal/models"
	"astroleap/internal/repositories"
	"astroleap/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRoomService_FindFirstAvailable(t *testing.T) {
	mockRepo := new(MockRoomRepository)
	service := services.NewRoomService(mockRepo)
	ctx := context.Background()

	room := &models.MultiplayerRoom{RoomCode: "ABC123", Player1ID: "p1"}
	mockRepo.On("FirstAvailable", ctx).Return(room, nil).Once()
	mockRepo.On("FirstAvailable", ctx).Return(nil, fmt.Errorf("available room: %w", repositories.ErrNotFound)).Once()

	got, err := service.FindFirstAvailable(ctx)
	assert.NoError(t, err)
	assert.Equal(t, room, got)

	got, err = service.FindFirstAvailable(ctx)
	assert.NoError(t, err)
	assert.Nil(t, got)
	mockRepo.AssertExpectations(t)
}

func TestRoomService_CreateAsHost(t *testing.T) {
	mockRepo := new(MockRoomRepository)
	service := services.NewRoomService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CreateAsHost", ctx, &models.MultiplayerRoom{RoomCode: "ABC123", Player1ID: "p1"}).Return(nil).Once()
	mockRepo.On("CreateAsHost", ctx, mock.Anything).Return(fmt.Errorf("failed to create room: %w", repositories.ErrDuplicateRoom)).Once()

	room, err := service.CreateAsHost(ctx, "ABC123", "p1")
	assert.NoError(t, err)
	assert.False(t, room.Complete())

	_, err = service.CreateAsHost(ctx, "ABC123", "p9")
	assert.ErrorIs(t, err, services.ErrRoomExists)
	mockRepo.AssertExpectations(t)
}
