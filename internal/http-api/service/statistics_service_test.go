package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetStatistics_Global(t *testing.T) {
	roomRepo := new(MockChatRoomRepository)
	msgRepo := new(MockMessageRepository)
	svc := NewStatisticsService(roomRepo, msgRepo, nil, 0)

	roomRepo.On("CountAll", mock.Anything, false).Return(int64(12), nil)
	roomRepo.On("CountAll", mock.Anything, true).Return(int64(9), nil)
	msgRepo.On("CountAll", mock.Anything).Return(int64(340), nil)
	msgRepo.On("CountUnreadAll", mock.Anything).Return(int64(17), nil)

	stats, err := svc.GetStatistics(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalRooms)
	assert.Equal(t, int64(9), stats.ActiveRooms)
	assert.Equal(t, int64(340), stats.TotalMessages)
	assert.Equal(t, int64(17), stats.TotalUnreadMessages)
}

func TestGetStatistics_UserScoped(t *testing.T) {
	roomRepo := new(MockChatRoomRepository)
	msgRepo := new(MockMessageRepository)
	svc := NewStatisticsService(roomRepo, msgRepo, nil, 0)

	roomRepo.On("CountByUser", mock.Anything, "user_a", false).Return(int64(4), nil)
	roomRepo.On("CountByUser", mock.Anything, "user_a", true).Return(int64(3), nil)
	roomRepo.On("RoomIDsForUser", mock.Anything, "user_a").Return([]int64{1, 2, 5, 8}, nil)
	msgRepo.On("CountByRooms", mock.Anything, []int64{1, 2, 5, 8}).Return(int64(60), nil)
	msgRepo.On("CountUnreadByRooms", mock.Anything, []int64{1, 2, 5, 8}, "user_a").Return(int64(6), nil)

	userID := "user_a"
	stats, err := svc.GetStatistics(context.Background(), &userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalRooms)
	assert.Equal(t, int64(3), stats.ActiveRooms)
	assert.Equal(t, int64(60), stats.TotalMessages)
	assert.Equal(t, int64(6), stats.TotalUnreadMessages)

	roomRepo.AssertNotCalled(t, "CountAll", mock.Anything, mock.Anything)
}

func TestGetStatistics_UserWithNoRooms(t *testing.T) {
	roomRepo := new(MockChatRoomRepository)
	msgRepo := new(MockMessageRepository)
	svc := NewStatisticsService(roomRepo, msgRepo, nil, 0)

	roomRepo.On("CountByUser", mock.Anything, "user_new", false).Return(int64(0), nil)
	roomRepo.On("CountByUser", mock.Anything, "user_new", true).Return(int64(0), nil)
	roomRepo.On("RoomIDsForUser", mock.Anything, "user_new").Return([]int64{}, nil)
	msgRepo.On("CountByRooms", mock.Anything, []int64{}).Return(int64(0), nil)
	msgRepo.On("CountUnreadByRooms", mock.Anything, []int64{}, "user_new").Return(int64(0), nil)

	userID := "user_new"
	stats, err := svc.GetStatistics(context.Background(), &userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalRooms)
	assert.Equal(t, int64(0), stats.ActiveRooms)
	assert.Equal(t, int64(0), stats.TotalMessages)
	assert.Equal(t, int64(0), stats.TotalUnreadMessages)
}

func TestGetStatistics_RepositoryError(t *testing.T) {
	roomRepo := new(MockChatRoomRepository)
	msgRepo := new(MockMessageRepository)
	svc := NewStatisticsService(roomRepo, msgRepo, nil, 0)

	roomRepo.On("CountAll", mock.Anything, false).Return(int64(0), assert.AnError)

	_, err := svc.GetStatistics(context.Background(), nil)
	assert.Error(t, err)
}
