package service

import (
	"context"
	"errors"

	"swappochat/internal/http-api/dto"
	"swappochat/internal/http-api/models"
	"swappochat/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrRoomNotFound    = errors.New("chat room not found")
	ErrRoomExists      = errors.New("chat room already exists for this trade offer")
	ErrSameParticipant = errors.New("chat room participants must be two distinct users")
)

type ChatRoomService interface {
	CreateRoom(ctx context.Context, req *dto.CreateChatRoomRequest) (*dto.ChatRoomResponse, error)
	GetRoom(ctx context.Context, id int64) (*dto.ChatRoomResponse, error)
	GetRoomByTradeOffer(ctx context.Context, tradeOfferID int64) (*dto.ChatRoomResponse, error)
	ListRoomsForUser(ctx context.Context, userID string, activeOnly bool, skip, limit int) ([]dto.ChatRoomWithLastMessage, error)
	Deactivate(ctx context.Context, id int64) (*dto.ChatRoomResponse, error)
}

type chatRoomService struct {
	roomRepo repository.ChatRoomRepository
	msgRepo  repository.MessageRepository
}

func NewChatRoomService(roomRepo repository.ChatRoomRepository, msgRepo repository.MessageRepository) ChatRoomService {
	return &chatRoomService{
		roomRepo: roomRepo,
		msgRepo:  msgRepo,
	}
}

// CreateRoom opens the room for an accepted trade offer. Each trade offer can
// have at most one room.
func (s *chatRoomService) CreateRoom(ctx context.Context, req *dto.CreateChatRoomRequest) (*dto.ChatRoomResponse, error) {
	if req.User1ID == req.User2ID {
		return nil, ErrSameParticipant
	}

	// Check-then-create keeps the common path cheap; the unique index on
	// trade_offer_id catches the concurrent case.
	if _, err := s.roomRepo.GetByTradeOffer(ctx, req.TradeOfferID); err == nil {
		return nil, ErrRoomExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &models.ChatRoom{
		TradeOfferID: req.TradeOfferID,
		User1ID:      req.User1ID,
		User2ID:      req.User2ID,
		IsActive:     true,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoomExists
		}
		return nil, err
	}

	return dto.FromModelToChatRoomResponse(room), nil
}

func (s *chatRoomService) GetRoom(ctx context.Context, id int64) (*dto.ChatRoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return dto.FromModelToChatRoomResponse(room), nil
}

func (s *chatRoomService) GetRoomByTradeOffer(ctx context.Context, tradeOfferID int64) (*dto.ChatRoomResponse, error) {
	room, err := s.roomRepo.GetByTradeOffer(ctx, tradeOfferID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return dto.FromModelToChatRoomResponse(room), nil
}

// ListRoomsForUser returns the user's conversations, most recent first, each
// enriched with the last message preview and the user's unread count.
func (s *chatRoomService) ListRoomsForUser(ctx context.Context, userID string, activeOnly bool, skip, limit int) ([]dto.ChatRoomWithLastMessage, error) {
	rooms, err := s.roomRepo.ListByUser(ctx, userID, activeOnly, skip, limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ChatRoomWithLastMessage, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]

		last, err := s.msgRepo.LastInRoom(ctx, room.ID)
		if err != nil {
			return nil, err
		}

		unread, err := s.msgRepo.CountUnread(ctx, room.ID, userID)
		if err != nil {
			return nil, err
		}

		result = append(result, *dto.FromModelToChatRoomWithLastMessage(room, last, unread))
	}

	return result, nil
}

// Deactivate soft-deletes the room when its trade completes or is cancelled.
// Deactivating an already-inactive room succeeds.
func (s *chatRoomService) Deactivate(ctx context.Context, id int64) (*dto.ChatRoomResponse, error) {
	if err := s.roomRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToChatRoomResponse(room), nil
}
