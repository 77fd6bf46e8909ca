package models

import (
	"time"
)

type Achievement struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Name        string    `gorm:"column:name;size:64;not null" json:"name"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	Icon        string    `gorm:"column:icon;size:255" json:"icon"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}
