package models

import (
	"time"
)

// UserFollow 关注关系，(follower_id, followee_id) 唯一
type UserFollow struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:idx_follower_followee" json:"follower_id"` // 关注人
	FolloweeID uint64    `gorm:"column:followee_id;not null;uniqueIndex:idx_follower_followee" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}
