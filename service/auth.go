package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecoconnect/config"
	"ecoconnect/models"
	"ecoconnect/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.Users, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService struct {
	UserRepo UserRepo
	Redis    *redis.Client
	Config   *config.Config
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.Users, error) {
	if s.UserRepo.IsUsernameExist(ctx, username) {
		return nil, ErrUsernameTaken
	}
	if s.UserRepo.IsEmailExist(ctx, email) {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.Users{
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh 刷新令牌轮换：旧 refresh token 一次性消费后重新签发
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if _, err := s.Redis.GetDel(ctx, s.refreshKey(claims.ID)).Result(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.UserRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(ctx, user)
}

// Logout 吊销 refresh token；access token 到期自然失效
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return ErrInvalidToken
	}
	return s.Redis.Del(ctx, s.refreshKey(claims.ID)).Err()
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.Users) (*TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)
	accessExpire := time.Duration(s.Config.Jwt.AccessExpire) * time.Second
	refreshExpire := time.Duration(s.Config.Jwt.RefreshExpire) * time.Second

	access, err := jwt.GenerateToken(secret, user.ID, user.Username, "access", uuid.NewString(), accessExpire)
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	refresh, err := jwt.GenerateToken(secret, user.ID, user.Username, "refresh", jti, refreshExpire)
	if err != nil {
		return nil, err
	}

	if err := s.Redis.Set(ctx, s.refreshKey(jti), user.ID, refreshExpire).Err(); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) refreshKey(jti string) string {
	return fmt.Sprintf("auth:refresh:%s", jti)
}
