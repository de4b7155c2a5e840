package repository

import (
	"context"
	"errors"
	"time"

	"swappochat/internal/http-api/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	CreateInRoom(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	ListByRoom(ctx context.Context, roomID int64, offset, limit int) ([]models.Message, error)
	Update(ctx context.Context, msg *models.Message) error
	MarkRoomRead(ctx context.Context, roomID int64, userID string, readAt time.Time) (int64, error)
	LastInRoom(ctx context.Context, roomID int64) (*models.Message, error)
	CountUnread(ctx context.Context, roomID int64, viewerID string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountUnreadAll(ctx context.Context) (int64, error)
	CountByRooms(ctx context.Context, roomIDs []int64) (int64, error)
	CountUnreadByRooms(ctx context.Context, roomIDs []int64, excludeSender string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// CreateInRoom persists the message and bumps the room's last_message_at to
// the message's creation instant. Both writes commit or roll back together.
func (r *messageRepository) CreateInRoom(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatRoom{}).
			Where("id = ?", msg.ChatRoomID).
			Update("last_message_at", msg.CreatedAt).Error
	})
}

func (r *messageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	var msg models.Message
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListByRoom returns the room's messages oldest first, for chat display.
func (r *messageRepository) ListByRoom(ctx context.Context, roomID int64, offset, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("chat_room_id = ?", roomID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

// MarkRoomRead flips every message in the room not sent by userID and not yet
// read to read in a single statement, and reports how many rows changed.
func (r *messageRepository) MarkRoomRead(ctx context.Context, roomID int64, userID string, readAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("chat_room_id = ? AND sender_id <> ? AND status <> ?", roomID, userID, models.StatusRead).
		Updates(map[string]interface{}{
			"status":  models.StatusRead,
			"read_at": readAt,
		})
	return result.RowsAffected, result.Error
}

// LastInRoom returns the newest message of the room, or nil when the room has
// no messages yet.
func (r *messageRepository) LastInRoom(ctx context.Context, roomID int64) (*models.Message, error) {
	var msg models.Message
	err := r.db.WithContext(ctx).
		Where("chat_room_id = ?", roomID).
		Order("created_at DESC").
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) CountUnread(ctx context.Context, roomID int64, viewerID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("chat_room_id = ? AND sender_id <> ? AND status <> ?", roomID, viewerID, models.StatusRead).
		Count(&total).Error
	return total, err
}

func (r *messageRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).Count(&total).Error
	return total, err
}

func (r *messageRepository) CountUnreadAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("status <> ?", models.StatusRead).
		Count(&total).Error
	return total, err
}

func (r *messageRepository) CountByRooms(ctx context.Context, roomIDs []int64) (int64, error) {
	if len(roomIDs) == 0 {
		return 0, nil
	}
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("chat_room_id IN ?", roomIDs).
		Count(&total).Error
	return total, err
}

func (r *messageRepository) CountUnreadByRooms(ctx context.Context, roomIDs []int64, excludeSender string) (int64, error) {
	if len(roomIDs) == 0 {
		return 0, nil
	}
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("chat_room_id IN ? AND sender_id <> ? AND status <> ?", roomIDs, excludeSender, models.StatusRead).
		Count(&total).Error
	return total, err
}
