package handler

import (
	"ecoconnect/pkg/context"
	"ecoconnect/pkg/response"
	"ecoconnect/service"
	"ecoconnect/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Leaderboard struct {
	LeaderboardService service.ILeaderboardService
}

func (l *Leaderboard) RegisterRouter(r gin.IRouter) {
	g := r.Group("/social")
	g.GET("/leaderboard", context.Wrap(l.GetLeaderboard))
}

// GetLeaderboard 排行榜，无需登录；缺省窗口为 week
func (l *Leaderboard) GetLeaderboard(c *gin.Context) error {
	timeframe := service.ParseTimeframe(c.DefaultQuery("timeframe", "week"))

	leaders, err := l.LeaderboardService.GetLeaderboard(c.Request.Context(), timeframe)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.LeaderboardResponse{
		Timeframe: timeframe.String(),
		Leaders:   leaders,
	})
	return nil
}
