package handler

import (
	"ecoconnect/config"
	"ecoconnect/pkg/context"
	"ecoconnect/pkg/response"
	"ecoconnect/service"
	"ecoconnect/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/register", context.Wrap(a.Register))
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/refresh", context.Wrap(a.Refresh))
	g.POST("/logout", context.Wrap(a.Logout))
}

// Register 注册账号
func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := a.AuthService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, user)
	return nil
}

// Login 登录，签发 access/refresh 令牌
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	tokens, err := a.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, tokens)
	return nil
}

// Refresh 刷新令牌
func (a *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	tokens, err := a.AuthService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, tokens)
	return nil
}

// Logout 吊销 refresh 令牌
func (a *Auth) Logout(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	if err := a.AuthService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return response.NewError(http.StatusUnauthorized, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"message": "Logged out"})
	return nil
}
