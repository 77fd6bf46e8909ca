package handler

import (
	"ecoconnect/config"
	"ecoconnect/middleware"
	"ecoconnect/pkg/context"
	"ecoconnect/pkg/response"
	"ecoconnect/service"
	"ecoconnect/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/social")
	g.GET("/feed", authorize, context.Wrap(f.GetFeed))
	g.GET("/achievements", authorize, context.Wrap(f.GetAchievements))
}

// GetFeed 自己和关注用户的动态流
func (f *Feed) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	activities, err := f.FeedService.GetFeed(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.FeedResponse{Activities: activities})
	return nil
}

// GetAchievements 用户成就列表
func (f *Feed) GetAchievements(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	achievements, err := f.FeedService.GetAchievements(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.AchievementsResponse{Achievements: achievements})
	return nil
}
