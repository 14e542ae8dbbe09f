package services_test

import (
	"context"
	"time"

	"astroleap/internal/models"
	"astroleap/pkg/mailer"
	"astroleap/pkg/paypal"
	"astroleap/pkg/rabbitmq"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User, unlocks *models.UserUnlocks, competitive *models.UserCompetitive) error {
	args := m.Called(ctx, user, unlocks, competitive)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateColumn(ctx context.Context, id string, column string, value interface{}) error {
	args := m.Called(ctx, id, column, value)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordByEmail(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

// MockUnlocksRepository is a mock implementation of repositories.UnlocksRepository
type MockUnlocksRepository struct {
	mock.Mock
}

func (m *MockUnlocksRepository) GetByUserID(ctx context.Context, userID string) (*models.UserUnlocks, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserUnlocks), args.Error(1)
}

func (m *MockUnlocksRepository) Create(ctx context.Context, unlocks *models.UserUnlocks) error {
	args := m.Called(ctx, unlocks)
	return args.Error(0)
}

func (m *MockUnlocksRepository) AddToList(ctx context.Context, userID, column, value string) (bool, error) {
	args := m.Called(ctx, userID, column, value)
	return args.Bool(0), args.Error(1)
}

// MockUserShopRepository is a mock implementation of repositories.UserShopRepository
type MockUserShopRepository struct {
	mock.Mock
}

func (m *MockUserShopRepository) GetShopIDsByUser(ctx context.Context, userID string) ([]int, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockUserShopRepository) GetAll(ctx context.Context) ([]models.UserShop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.UserShop), args.Error(1)
}

func (m *MockUserShopRepository) Create(ctx context.Context, userShop *models.UserShop) error {
	args := m.Called(ctx, userShop)
	return args.Error(0)
}

func (m *MockUserShopRepository) UpdateTimeToSpin(ctx context.Context, userShop *models.UserShop) error {
	args := m.Called(ctx, userShop)
	return args.Error(0)
}

func (m *MockUserShopRepository) Delete(ctx context.Context, userID string, idShop int) error {
	args := m.Called(ctx, userID, idShop)
	return args.Error(0)
}

func (m *MockUserShopRepository) Reconcile(ctx context.Context, userID string, timeToSpin time.Time) ([]int, []int, error) {
	args := m.Called(ctx, userID, timeToSpin)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]int), args.Get(1).([]int), args.Error(2)
}

// MockShopRepository is a mock implementation of repositories.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) GetAll(ctx context.Context) ([]models.ShopItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ShopItem), args.Error(1)
}

func (m *MockShopRepository) GetByID(ctx context.Context, id int) (*models.ShopItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopItem), args.Error(1)
}

func (m *MockShopRepository) Create(ctx context.Context, item *models.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// MockCompetitiveRepository is a mock implementation of repositories.CompetitiveRepository
type MockCompetitiveRepository struct {
	mock.Mock
}

func (m *MockCompetitiveRepository) GetAll(ctx context.Context) ([]models.UserCompetitive, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.UserCompetitive), args.Error(1)
}

func (m *MockCompetitiveRepository) GetByUserID(ctx context.Context, userID string) (*models.UserCompetitive, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserCompetitive), args.Error(1)
}

func (m *MockCompetitiveRepository) Create(ctx context.Context, row *models.UserCompetitive) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockCompetitiveRepository) Update(ctx context.Context, userID string, values map[string]interface{}) error {
	args := m.Called(ctx, userID, values)
	return args.Error(0)
}

func (m *MockCompetitiveRepository) Top(ctx context.Context, column string, limit int) ([]models.UserCompetitive, error) {
	args := m.Called(ctx, column, limit)
	return args.Get(0).([]models.UserCompetitive), args.Error(1)
}

// MockRoomRepository is a mock implementation of repositories.RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FirstAvailable(ctx context.Context) (*models.MultiplayerRoom, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MultiplayerRoom), args.Error(1)
}

func (m *MockRoomRepository) CreateAsHost(ctx context.Context, room *models.MultiplayerRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) SetPlayer2(ctx context.Context, roomCode, player2ID string) error {
	args := m.Called(ctx, roomCode, player2ID)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, roomCode string) error {
	args := m.Called(ctx, roomCode)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByCode(ctx context.Context, roomCode string) (*models.MultiplayerRoom, error) {
	args := m.Called(ctx, roomCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MultiplayerRoom), args.Error(1)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithRetention(ctx context.Context, order *models.Order, now time.Time) error {
	args := m.Called(ctx, order, now)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) MarkDone(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockGateway is a mock implementation of services.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) AccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) CreateOrder(ctx context.Context, token string, amount decimal.Decimal) (*paypal.Order, error) {
	args := m.Called(ctx, token, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paypal.Order), args.Error(1)
}

func (m *MockGateway) GetOrder(ctx context.Context, token, orderID string) (*paypal.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paypal.Order), args.Error(1)
}

func (m *MockGateway) CaptureOrder(ctx context.Context, token, orderID string) (*paypal.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paypal.Order), args.Error(1)
}

// MockMailer is a mock implementation of services.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderEvent(event rabbitmq.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
