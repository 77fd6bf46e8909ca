package service

import (
	"context"
	"time"

	"ecoconnect/models"
)

// 仓储接口，由 dao 包实现；service 层不感知具体持久化方式

type UserRepo interface {
	Create(ctx context.Context, user *models.Users) error
	FindByID(ctx context.Context, id uint64) (*models.Users, error)
	FindByUsername(ctx context.Context, username string) (*models.Users, error)
	IsUsernameExist(ctx context.Context, username string) bool
	IsEmailExist(ctx context.Context, email string) bool
}

type FollowRepo interface {
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	CreateEdge(ctx context.Context, followerID, followeeID uint64) error
	DeleteEdge(ctx context.Context, followerID, followeeID uint64) error
	FolloweeIDs(ctx context.Context, followerID uint64) ([]uint64, error)
}

type ActivityRepo interface {
	Create(ctx context.Context, entry *models.ActivityFeed) error
	ListForUsers(ctx context.Context, userIDs []uint64, limit int) ([]*models.ActivityFeed, error)
}

type AchievementRepo interface {
	ListByUser(ctx context.Context, userID uint64) ([]*models.Achievement, error)
}

type WasteLogRepo interface {
	AggregateSince(ctx context.Context, since time.Time, limit int) ([]*models.LeaderboardRow, error)
}
