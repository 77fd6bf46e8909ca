package dao

import (
	"context"

	"ecoconnect/models"

	"gorm.io/gorm"
)

type ActivityFeedDAO struct {
	Repo[models.ActivityFeed]
}

func NewActivityFeedDAO(db *gorm.DB) *ActivityFeedDAO {
	return &ActivityFeedDAO{
		Repo: NewRepo[models.ActivityFeed](db),
	}
}

// ListForUsers 查询一组用户的动态，时间倒序，时间相同按插入顺序新的在前
func (d *ActivityFeedDAO) ListForUsers(ctx context.Context, userIDs []uint64, limit int) ([]*models.ActivityFeed, error) {
	entries := make([]*models.ActivityFeed, 0)
	if len(userIDs) == 0 {
		return entries, nil
	}
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
