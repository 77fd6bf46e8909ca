package types

import "ecoconnect/models"

type FeedResponse struct {
	Activities []*models.ActivityFeed `json:"activities"`
}

type AchievementsResponse struct {
	Achievements []*models.Achievement `json:"achievements"`
}

type LeaderboardResponse struct {
	Timeframe string                   `json:"timeframe"`
	Leaders   []*models.LeaderboardRow `json:"leaders"`
}
