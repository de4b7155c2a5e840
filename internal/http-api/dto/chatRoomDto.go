package dto

import (
	"time"

	"swappochat/internal/http-api/models"
)

// CreateChatRoomRequest is the payload for opening a room on trade acceptance.
type CreateChatRoomRequest struct {
	TradeOfferID int64  `json:"trade_offer_id" binding:"required"`
	User1ID      string `json:"user1_id" binding:"required,max=100"`
	User2ID      string `json:"user2_id" binding:"required,max=100"`
}

type ChatRoomResponse struct {
	ID            int64      `json:"id"`
	TradeOfferID  int64      `json:"trade_offer_id"`
	User1ID       string     `json:"user1_id"`
	User2ID       string     `json:"user2_id"`
	IsActive      bool       `json:"is_active"`
	LastMessageAt *time.Time `json:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ChatRoomWithLastMessage is the conversation-list view: the room plus a
// preview of its most recent message and the viewer's unread count.
type ChatRoomWithLastMessage struct {
	ChatRoomResponse
	LastMessageContent  *string `json:"last_message_content"`
	LastMessageSenderID *string `json:"last_message_sender_id"`
	UnreadCount         int64   `json:"unread_count"`
}

func FromModelToChatRoomResponse(room *models.ChatRoom) *ChatRoomResponse {
	return &ChatRoomResponse{
		ID:            room.ID,
		TradeOfferID:  room.TradeOfferID,
		User1ID:       room.User1ID,
		User2ID:       room.User2ID,
		IsActive:      room.IsActive,
		LastMessageAt: room.LastMessageAt,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

func FromModelToChatRoomWithLastMessage(room *models.ChatRoom, last *models.Message, unread int64) *ChatRoomWithLastMessage {
	resp := &ChatRoomWithLastMessage{
		ChatRoomResponse: *FromModelToChatRoomResponse(room),
		UnreadCount:      unread,
	}
	if last != nil {
		resp.LastMessageContent = &last.Content
		resp.LastMessageSenderID = &last.SenderID
	}
	return resp
}
