package models

import (
	"time"
)

// WasteLog 减废打卡记录，排行榜只读消费
type WasteLog struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	Date      time.Time `gorm:"column:date;not null;index" json:"date"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (WasteLog) TableName() string {
	return "waste_logs"
}

type LeaderboardRow struct {
	UserID      uint64  `gorm:"column:user_id" json:"-"`
	Username    string  `gorm:"column:username" json:"username"`
	TotalLogs   int64   `gorm:"column:total_logs" json:"total_logs"`
	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`
}
