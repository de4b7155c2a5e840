package dto

import (
	"time"

	"swappochat/internal/http-api/models"
)

// SendMessageRequest is the payload for posting a message into a room.
type SendMessageRequest struct {
	ChatRoomID int64  `json:"chat_room_id" binding:"required"`
	SenderID   string `json:"sender_id" binding:"required,max=100"`
	Content    string `json:"content" binding:"required,min=1,max=5000"`
}

// UpdateMessageRequest carries a status change, typically sent -> read.
type UpdateMessageRequest struct {
	Status models.MessageStatus `json:"status" binding:"required"`
}

type MessageResponse struct {
	ID         int64                `json:"id"`
	ChatRoomID int64                `json:"chat_room_id"`
	SenderID   string               `json:"sender_id"`
	Content    string               `json:"content"`
	Status     models.MessageStatus `json:"status"`
	ReadAt     *time.Time           `json:"read_at"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

type MarkReadResponse struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updated_count"`
}

func FromModelToMessageResponse(msg *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:         msg.ID,
		ChatRoomID: msg.ChatRoomID,
		SenderID:   msg.SenderID,
		Content:    msg.Content,
		Status:     msg.Status,
		ReadAt:     msg.ReadAt,
		CreatedAt:  msg.CreatedAt,
		UpdatedAt:  msg.UpdatedAt,
	}
}
