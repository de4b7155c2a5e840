package models

import "time"

// MessageStatus is the delivery state of a message.
type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// statusRank orders statuses along the sent -> delivered -> read progression.
var statusRank = map[MessageStatus]int{
	StatusSent:      0,
	StatusDelivered: 1,
	StatusRead:      2,
}

// Valid reports whether s is one of the known statuses.
func (s MessageStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether moving from s to next keeps the forward-only
// ordering. Equal statuses count as a valid (no-op) transition.
func (s MessageStatus) CanTransition(next MessageStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// Message belongs to a chat room and carries its own delivery state. ReadAt is
// set exactly once, on the first transition into read.
type Message struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatRoomID int64         `gorm:"not null;index" json:"chat_room_id"`
	SenderID   string        `gorm:"type:varchar(100);not null;index" json:"sender_id"`
	Content    string        `gorm:"type:text;not null" json:"content"`
	Status     MessageStatus `gorm:"type:varchar(20);not null;default:sent;index" json:"status"`
	ReadAt     *time.Time    `json:"read_at"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	ChatRoom *ChatRoom `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE" json:"chat_room,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
