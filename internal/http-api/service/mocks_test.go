package service

import (
	"context"
	"time"

	"swappochat/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

// MockChatRoomRepository mocks repository.ChatRoomRepository
type MockChatRoomRepository struct {
	mock.Mock
}

func (m *MockChatRoomRepository) Create(ctx context.Context, room *models.ChatRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockChatRoomRepository) GetByID(ctx context.Context, id int64) (*models.ChatRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRoom), args.Error(1)
}

func (m *MockChatRoomRepository) GetByTradeOffer(ctx context.Context, tradeOfferID int64) (*models.ChatRoom, error) {
	args := m.Called(ctx, tradeOfferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRoom), args.Error(1)
}

func (m *MockChatRoomRepository) ListByUser(ctx context.Context, userID string, activeOnly bool, offset, limit int) ([]models.ChatRoom, error) {
	args := m.Called(ctx, userID, activeOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRoom), args.Error(1)
}

func (m *MockChatRoomRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChatRoomRepository) CountByUser(ctx context.Context, userID string, activeOnly bool) (int64, error) {
	args := m.Called(ctx, userID, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatRoomRepository) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChatRoomRepository) RoomIDsForUser(ctx context.Context, userID string) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockMessageRepository mocks repository.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CreateInRoom(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) ListByRoom(ctx context.Context, roomID int64, offset, limit int) ([]models.Message, error) {
	args := m.Called(ctx, roomID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) Update(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkRoomRead(ctx context.Context, roomID int64, userID string, readAt time.Time) (int64, error) {
	args := m.Called(ctx, roomID, userID, readAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) LastInRoom(ctx context.Context, roomID int64) (*models.Message, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context, roomID int64, viewerID string) (int64, error) {
	args := m.Called(ctx, roomID, viewerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnreadAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountByRooms(ctx context.Context, roomIDs []int64) (int64, error) {
	args := m.Called(ctx, roomIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountUnreadByRooms(ctx context.Context, roomIDs []int64, excludeSender string) (int64, error) {
	args := m.Called(ctx, roomIDs, excludeSender)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier mocks the Notifier dependency of MessageService
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyNewMessage(recipientID, senderID string, messageID int64) {
	m.Called(recipientID, senderID, messageID)
}
