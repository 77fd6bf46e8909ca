//go:build wireinject
// +build wireinject

package main

import (
	"ecoconnect/config"
	"ecoconnect/dao"
	"ecoconnect/handler"
	"ecoconnect/pkg/client"
	"ecoconnect/pkg/database"
	"ecoconnect/pkg/server"
	"ecoconnect/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		dao.ProviderSet,
		wire.Bind(new(service.UserRepo), new(*dao.Users)),
		wire.Bind(new(service.FollowRepo), new(*dao.UserFollowDAO)),
		wire.Bind(new(service.ActivityRepo), new(*dao.ActivityFeedDAO)),
		wire.Bind(new(service.AchievementRepo), new(*dao.AchievementDAO)),
		wire.Bind(new(service.WasteLogRepo), new(*dao.WasteLogDAO)),

		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Leaderboard), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
