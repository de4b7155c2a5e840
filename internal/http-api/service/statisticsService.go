package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"swappochat/internal/http-api/dto"
	"swappochat/internal/http-api/repository"

	"github.com/redis/go-redis/v9"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, userID *string) (*dto.ChatStatistics, error)
}

type statisticsService struct {
	roomRepo repository.ChatRoomRepository
	msgRepo  repository.MessageRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewStatisticsService builds the aggregator. cache may be nil; statistics are
// then computed on every request.
func NewStatisticsService(roomRepo repository.ChatRoomRepository, msgRepo repository.MessageRepository, cache *redis.Client, cacheTTL time.Duration) StatisticsService {
	return &statisticsService{
		roomRepo: roomRepo,
		msgRepo:  msgRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetStatistics computes room and message counters, scoped to the user's rooms
// when userID is given, global otherwise. Unread counts exclude the scoped
// user's own messages.
func (s *statisticsService) GetStatistics(ctx context.Context, userID *string) (*dto.ChatStatistics, error) {
	key := "chat:stats:global"
	if userID != nil {
		key = "chat:stats:user:" + *userID
	}

	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	var stats *dto.ChatStatistics
	var err error
	if userID != nil {
		stats, err = s.userStatistics(ctx, *userID)
	} else {
		stats, err = s.globalStatistics(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, stats)
	return stats, nil
}

func (s *statisticsService) userStatistics(ctx context.Context, userID string) (*dto.ChatStatistics, error) {
	totalRooms, err := s.roomRepo.CountByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	activeRooms, err := s.roomRepo.CountByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	roomIDs, err := s.roomRepo.RoomIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalMessages, err := s.msgRepo.CountByRooms(ctx, roomIDs)
	if err != nil {
		return nil, err
	}

	totalUnread, err := s.msgRepo.CountUnreadByRooms(ctx, roomIDs, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ChatStatistics{
		TotalRooms:          totalRooms,
		ActiveRooms:         activeRooms,
		TotalMessages:       totalMessages,
		TotalUnreadMessages: totalUnread,
	}, nil
}

func (s *statisticsService) globalStatistics(ctx context.Context) (*dto.ChatStatistics, error) {
	totalRooms, err := s.roomRepo.CountAll(ctx, false)
	if err != nil {
		return nil, err
	}

	activeRooms, err := s.roomRepo.CountAll(ctx, true)
	if err != nil {
		return nil, err
	}

	totalMessages, err := s.msgRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalUnread, err := s.msgRepo.CountUnreadAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ChatStatistics{
		TotalRooms:          totalRooms,
		ActiveRooms:         activeRooms,
		TotalMessages:       totalMessages,
		TotalUnreadMessages: totalUnread,
	}, nil
}

// Cache helpers degrade to a miss on any Redis problem; statistics are cheap
// enough to recompute.
func (s *statisticsService) cacheGet(ctx context.Context, key string) *dto.ChatStatistics {
	if s.cache == nil {
		return nil
	}

	val, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}

	var stats dto.ChatStatistics
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *statisticsService) cacheSet(ctx context.Context, key string, stats *dto.ChatStatistics) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		log.Printf("[StatisticsService] Failed to cache %s: %v", key, err)
	}
}
