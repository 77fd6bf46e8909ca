package service

import (
	"context"
	"time"

	"ecoconnect/models"
)

// LeaderboardLimit 排行榜条数上限
const LeaderboardLimit = 10

// Timeframe 排行榜统计窗口，封闭枚举
type Timeframe int

const (
	TimeframeAllTime Timeframe = iota
	TimeframeWeek
	TimeframeMonth
)

// ParseTimeframe 解析窗口参数，未识别的取值一律回落到 all-time
func ParseTimeframe(s string) Timeframe {
	switch s {
	case "week":
		return TimeframeWeek
	case "month":
		return TimeframeMonth
	default:
		return TimeframeAllTime
	}
}

func (t Timeframe) String() string {
	switch t {
	case TimeframeWeek:
		return "week"
	case TimeframeMonth:
		return "month"
	default:
		return "all-time"
	}
}

// WindowStart 窗口下界；all-time 用 Unix 纪元，零值时间 MySQL 存不下
func (t Timeframe) WindowStart(now time.Time) time.Time {
	switch t {
	case TimeframeWeek:
		return now.AddDate(0, 0, -7)
	case TimeframeMonth:
		return now.AddDate(0, 0, -30)
	default:
		return time.Unix(0, 0)
	}
}

var _ ILeaderboardService = (*LeaderboardService)(nil)

type ILeaderboardService interface {
	GetLeaderboard(ctx context.Context, timeframe Timeframe) ([]*models.LeaderboardRow, error)
}

type LeaderboardService struct {
	WasteLogRepo WasteLogRepo
}

// GetLeaderboard 窗口内按用户聚合减废记录，取前 LeaderboardLimit 名
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, timeframe Timeframe) ([]*models.LeaderboardRow, error) {
	since := timeframe.WindowStart(time.Now())
	return s.WasteLogRepo.AggregateSince(ctx, since, LeaderboardLimit)
}
