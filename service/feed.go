package service

import (
	"context"

	"ecoconnect/models"
)

// FeedLimit 动态流硬上限，不分页
const FeedLimit = 50

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFeed(ctx context.Context, userID uint64) ([]*models.ActivityFeed, error)
	GetAchievements(ctx context.Context, userID uint64) ([]*models.Achievement, error)
}

type FeedService struct {
	FollowRepo      FollowRepo
	ActivityRepo    ActivityRepo
	AchievementRepo AchievementRepo
}

// GetFeed 自己 + 关注用户的动态，时间倒序，最多 FeedLimit 条
// 关注集合为查询时快照，不做缓存
func (s *FeedService) GetFeed(ctx context.Context, userID uint64) ([]*models.ActivityFeed, error) {
	ids, err := s.FollowRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, userID)
	return s.ActivityRepo.ListForUsers(ctx, ids, FeedLimit)
}

// GetAchievements 用户成就，时间倒序，无上限
func (s *FeedService) GetAchievements(ctx context.Context, userID uint64) ([]*models.Achievement, error) {
	return s.AchievementRepo.ListByUser(ctx, userID)
}
