package service

import (
	"context"
	"errors"
	"log"
	"time"
	"unicode/utf8"

	"swappochat/internal/http-api/dto"
	"swappochat/internal/http-api/models"
	"swappochat/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrRoomInactive    = errors.New("chat room is not active")
	ErrNotParticipant  = errors.New("user is not a participant in this chat room")
	ErrInvalidContent  = errors.New("message content must be between 1 and 5000 characters")
	ErrInvalidStatus   = errors.New("unknown message status")
)

const maxContentLength = 5000

// Notifier delivers best-effort new-message events. Implementations must not
// block the caller and must never surface delivery failures.
type Notifier interface {
	NotifyNewMessage(recipientID, senderID string, messageID int64)
}

type MessageService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetMessage(ctx context.Context, id int64) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, roomID int64, skip, limit int) ([]dto.MessageResponse, error)
	UpdateStatus(ctx context.Context, id int64, status models.MessageStatus) (*dto.MessageResponse, error)
	MarkRoomRead(ctx context.Context, roomID int64, userID string) (int64, error)
}

type messageService struct {
	roomRepo repository.ChatRoomRepository
	msgRepo  repository.MessageRepository
	notifier Notifier
}

func NewMessageService(roomRepo repository.ChatRoomRepository, msgRepo repository.MessageRepository, notifier Notifier) MessageService {
	return &messageService{
		roomRepo: roomRepo,
		msgRepo:  msgRepo,
		notifier: notifier,
	}
}

// SendMessage persists a message in an active room and dispatches a
// notification to the other participant. Once the message is committed the
// send succeeds regardless of the notification outcome.
func (s *messageService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, req.ChatRoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if !room.IsActive {
		return nil, ErrRoomInactive
	}

	if !room.HasParticipant(req.SenderID) {
		return nil, ErrNotParticipant
	}

	if n := utf8.RuneCountInString(req.Content); n < 1 || n > maxContentLength {
		return nil, ErrInvalidContent
	}

	msg := &models.Message{
		ChatRoomID: req.ChatRoomID,
		SenderID:   req.SenderID,
		Content:    req.Content,
		Status:     models.StatusSent,
	}

	// One transaction: the message row and the room's last_message_at move
	// together or not at all.
	if err := s.msgRepo.CreateInRoom(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(room.OtherParticipant(req.SenderID), req.SenderID, msg.ID)
	}

	return dto.FromModelToMessageResponse(msg), nil
}

func (s *messageService) GetMessage(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	msg, err := s.msgRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return dto.FromModelToMessageResponse(msg), nil
}

// ListMessages returns the room's messages oldest first.
func (s *messageService) ListMessages(ctx context.Context, roomID int64, skip, limit int) ([]dto.MessageResponse, error) {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	messages, err := s.msgRepo.ListByRoom(ctx, roomID, skip, limit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		result = append(result, *dto.FromModelToMessageResponse(&messages[i]))
	}
	return result, nil
}

// UpdateStatus writes the new status. read_at is set once, on the first
// transition into read. Backward moves are logged and still applied.
func (s *messageService) UpdateStatus(ctx context.Context, id int64, status models.MessageStatus) (*dto.MessageResponse, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	msg, err := s.msgRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if !msg.Status.CanTransition(status) {
		log.Printf("[MessageService] Backward status transition on message %d: %s -> %s", msg.ID, msg.Status, status)
	}

	if status == models.StatusRead && msg.ReadAt == nil {
		now := time.Now()
		msg.ReadAt = &now
	}
	msg.Status = status

	if err := s.msgRepo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return dto.FromModelToMessageResponse(msg), nil
}

// MarkRoomRead marks every message sent by the other participant as read and
// returns how many changed. Calling it again immediately returns 0.
func (s *messageService) MarkRoomRead(ctx context.Context, roomID int64, userID string) (int64, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, err
	}

	if !room.HasParticipant(userID) {
		return 0, ErrNotParticipant
	}

	return s.msgRepo.MarkRoomRead(ctx, roomID, userID, time.Now())
}
