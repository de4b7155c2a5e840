package dto

// ChatStatistics is the aggregate view over rooms and messages, optionally
// scoped to a single user. Counters are zero on an empty scope, never null.
type ChatStatistics struct {
	TotalRooms          int64 `json:"total_rooms"`
	ActiveRooms         int64 `json:"active_rooms"`
	TotalMessages       int64 `json:"total_messages"`
	TotalUnreadMessages int64 `json:"total_unread_messages"`
}
