package dao

import (
	"context"
	"time"

	"ecoconnect/models"

	"gorm.io/gorm"
)

type WasteLogDAO struct {
	Repo[models.WasteLog]
}

func NewWasteLogDAO(db *gorm.DB) *WasteLogDAO {
	return &WasteLogDAO{
		Repo: NewRepo[models.WasteLog](db),
	}
}

// AggregateSince 按用户聚合减废记录，内连接，窗口内无记录的用户不出现
// 排序：total_logs 倒序 -> total_amount 倒序 -> 用户ID 正序（保证结果稳定）
func (d *WasteLogDAO) AggregateSince(ctx context.Context, since time.Time, limit int) ([]*models.LeaderboardRow, error) {
	rows := make([]*models.LeaderboardRow, 0)
	err := d.Db.WithContext(ctx).
		Table("waste_logs wl").
		Select("u.id AS user_id, u.username AS username, COUNT(wl.id) AS total_logs, COALESCE(SUM(wl.amount), 0) AS total_amount").
		Joins("JOIN users u ON u.id = wl.user_id").
		Where("wl.date >= ?", since).
		Group("u.id").
		Order("total_logs DESC, total_amount DESC, u.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
