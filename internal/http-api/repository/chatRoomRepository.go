package repository

import (
	"context"

	"swappochat/internal/http-api/models"

	"gorm.io/gorm"
)

type ChatRoomRepository interface {
	Create(ctx context.Context, room *models.ChatRoom) error
	GetByID(ctx context.Context, id int64) (*models.ChatRoom, error)
	GetByTradeOffer(ctx context.Context, tradeOfferID int64) (*models.ChatRoom, error)
	ListByUser(ctx context.Context, userID string, activeOnly bool, offset, limit int) ([]models.ChatRoom, error)
	Deactivate(ctx context.Context, id int64) error
	CountByUser(ctx context.Context, userID string, activeOnly bool) (int64, error)
	CountAll(ctx context.Context, activeOnly bool) (int64, error)
	RoomIDsForUser(ctx context.Context, userID string) ([]int64, error)
}

type chatRoomRepository struct {
	db *gorm.DB
}

func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &chatRoomRepository{db: db}
}

// Create inserts a new room. The unique index on trade_offer_id is the
// backstop against concurrent creation for the same trade.
func (r *chatRoomRepository) Create(ctx context.Context, room *models.ChatRoom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *chatRoomRepository) GetByID(ctx context.Context, id int64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *chatRoomRepository) GetByTradeOffer(ctx context.Context, tradeOfferID int64) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.WithContext(ctx).
		Where("trade_offer_id = ?", tradeOfferID).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ListByUser returns rooms where the user is either participant, most recent
// conversation first. Rooms that never had a message sort last.
func (r *chatRoomRepository) ListByUser(ctx context.Context, userID string, activeOnly bool, offset, limit int) ([]models.ChatRoom, error) {
	var rooms []models.ChatRoom

	query := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.
		Order("last_message_at DESC NULLS LAST").
		Offset(offset).
		Limit(limit).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

// Deactivate clears the active flag. Returns gorm.ErrRecordNotFound when the
// room does not exist; deactivating an already-inactive room is a no-op.
func (r *chatRoomRepository) Deactivate(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.ChatRoom{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *chatRoomRepository) CountByUser(ctx context.Context, userID string, activeOnly bool) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).
		Model(&models.ChatRoom{}).
		Where("user1_id = ? OR user2_id = ?", userID, userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&total).Error
	return total, err
}

func (r *chatRoomRepository) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.ChatRoom{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&total).Error
	return total, err
}

// RoomIDsForUser returns the ids of every room the user participates in,
// active or not. Used to scope message statistics.
func (r *chatRoomRepository) RoomIDsForUser(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&models.ChatRoom{}).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
