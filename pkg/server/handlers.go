package server

import (
	"ecoconnect/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	Follow      *handler.Follow
	Feed        *handler.Feed
	Leaderboard *handler.Leaderboard
}
