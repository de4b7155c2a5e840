package models

import "time"

// ChatRoom is a two-participant conversation bound 1:1 to an accepted trade
// offer. Participants are fixed at creation; the room is soft-deleted by
// flipping IsActive when the trade completes or is cancelled.
type ChatRoom struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	TradeOfferID  int64      `gorm:"not null;uniqueIndex" json:"trade_offer_id"`
	User1ID       string     `gorm:"type:varchar(100);not null;index" json:"user1_id"`
	User2ID       string     `gorm:"type:varchar(100);not null;index" json:"user2_id"`
	IsActive      bool       `gorm:"not null;default:true;index" json:"is_active"`
	LastMessageAt *time.Time `gorm:"index" json:"last_message_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// HasParticipant reports whether userID is one of the two room members.
func (r *ChatRoom) HasParticipant(userID string) bool {
	return userID == r.User1ID || userID == r.User2ID
}

// OtherParticipant returns the participant that is not userID. The caller is
// expected to have checked HasParticipant first.
func (r *ChatRoom) OtherParticipant(userID string) string {
	if userID == r.User1ID {
		return r.User2ID
	}
	return r.User1ID
}
