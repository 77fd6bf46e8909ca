package models

import (
	"time"
)

// ActivityFeed 动态记录，只增不改
type ActivityFeed struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	ActivityType string    `gorm:"column:activity_type;size:50;not null" json:"activity_type"`
	Content      string    `gorm:"column:content;size:255" json:"content"`
	RelatedID    *uint64   `gorm:"column:related_id" json:"related_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (ActivityFeed) TableName() string {
	return "activity_feed"
}

const (
	ActivityTypeFollow = "follow"
)
