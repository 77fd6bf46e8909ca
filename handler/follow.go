package handler

import (
	"ecoconnect/config"
	"ecoconnect/middleware"
	"ecoconnect/pkg/context"
	"ecoconnect/pkg/response"
	"ecoconnect/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/social")
	g.POST("/follow/:user_id", authorize, context.Wrap(f.FollowUser))
	g.POST("/unfollow/:user_id", authorize, context.Wrap(f.UnfollowUser))
}

// FollowUser 关注用户
func (f *Follow) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	target, err := f.FollowService.Follow(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return followError(err)
	}

	response.Success(c, gin.H{"message": fmt.Sprintf("Now following %s", target.Username)})
	return nil
}

// UnfollowUser 取消关注用户
func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetUserID, err := parseUserID(c)
	if err != nil {
		return err
	}

	target, err := f.FollowService.Unfollow(c.Request.Context(), userID, targetUserID)
	if err != nil {
		return followError(err)
	}

	response.Success(c, gin.H{"message": fmt.Sprintf("Unfollowed %s", target.Username)})
	return nil
}

func parseUserID(c *gin.Context) (uint64, error) {
	param := c.Param("user_id")
	if param == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 user_id")
	}
	var id uint64
	if _, err := fmt.Sscanf(param, "%d", &id); err != nil {
		return 0, response.NewError(http.StatusBadRequest, "user_id 格式错误")
	}
	return id, nil
}

// followError 业务错误映射为 4xx
func followError(err error) error {
	switch {
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrNotFollowing):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
