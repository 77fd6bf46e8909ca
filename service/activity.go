package service

import (
	"context"
	"time"

	"ecoconnect/models"
)

var _ IActivityService = (*ActivityService)(nil)

type IActivityService interface {
	Record(ctx context.Context, userID uint64, activityType, content string, relatedID *uint64) (*models.ActivityFeed, error)
}

type ActivityService struct {
	ActivityRepo ActivityRepo
}

// Record 追加一条动态，单次同步写入，返回落库后的记录
func (s *ActivityService) Record(ctx context.Context, userID uint64, activityType, content string, relatedID *uint64) (*models.ActivityFeed, error) {
	entry := &models.ActivityFeed{
		UserID:       userID,
		ActivityType: activityType,
		Content:      content,
		RelatedID:    relatedID,
		CreatedAt:    time.Now(),
	}
	if err := s.ActivityRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
