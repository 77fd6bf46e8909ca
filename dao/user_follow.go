package dao

import (
	"context"
	"errors"
	"time"

	"ecoconnect/models"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var follow models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateEdge 插入关注关系，唯一索引兜底并发重复关注
func (d *UserFollowDAO) CreateEdge(ctx context.Context, followerID, followeeID uint64) error {
	follow := models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&follow).Error
}

// DeleteEdge 删除关注关系
func (d *UserFollowDAO) DeleteEdge(ctx context.Context, followerID, followeeID uint64) error {
	return d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.UserFollow{}).Error
}

// FolloweeIDs 获取用户关注的全部用户ID
func (d *UserFollowDAO) FolloweeIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	return ids, err
}
