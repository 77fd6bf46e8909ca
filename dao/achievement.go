package dao

import (
	"context"

	"ecoconnect/models"

	"gorm.io/gorm"
)

type AchievementDAO struct {
	Repo[models.Achievement]
}

func NewAchievementDAO(db *gorm.DB) *AchievementDAO {
	return &AchievementDAO{
		Repo: NewRepo[models.Achievement](db),
	}
}

// ListByUser 查询用户成就，时间倒序
func (d *AchievementDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.Achievement, error) {
	achievements := make([]*models.Achievement, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&achievements).Error
	return achievements, err
}
