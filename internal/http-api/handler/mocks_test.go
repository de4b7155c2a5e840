package handler

import (
	"context"

	"swappochat/internal/http-api/dto"
	"swappochat/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

// MockChatRoomService mocks service.ChatRoomService
type MockChatRoomService struct {
	mock.Mock
}

func (m *MockChatRoomService) CreateRoom(ctx context.Context, req *dto.CreateChatRoomRequest) (*dto.ChatRoomResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatRoomResponse), args.Error(1)
}

func (m *MockChatRoomService) GetRoom(ctx context.Context, id int64) (*dto.ChatRoomResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatRoomResponse), args.Error(1)
}

func (m *MockChatRoomService) GetRoomByTradeOffer(ctx context.Context, tradeOfferID int64) (*dto.ChatRoomResponse, error) {
	args := m.Called(ctx, tradeOfferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatRoomResponse), args.Error(1)
}

func (m *MockChatRoomService) ListRoomsForUser(ctx context.Context, userID string, activeOnly bool, skip, limit int) ([]dto.ChatRoomWithLastMessage, error) {
	args := m.Called(ctx, userID, activeOnly, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ChatRoomWithLastMessage), args.Error(1)
}

func (m *MockChatRoomService) Deactivate(ctx context.Context, id int64) (*dto.ChatRoomResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatRoomResponse), args.Error(1)
}

// MockMessageService mocks service.MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) GetMessage(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) ListMessages(ctx context.Context, roomID int64, skip, limit int) ([]dto.MessageResponse, error) {
	args := m.Called(ctx, roomID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) UpdateStatus(ctx context.Context, id int64, status models.MessageStatus) (*dto.MessageResponse, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) MarkRoomRead(ctx context.Context, roomID int64, userID string) (int64, error) {
	args := m.Called(ctx, roomID, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatisticsService mocks service.StatisticsService
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) GetStatistics(ctx context.Context, userID *string) (*dto.ChatStatistics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ChatStatistics), args.Error(1)
}
