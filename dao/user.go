package dao

import (
	"context"
	"errors"

	"ecoconnect/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByID 按主键查询，未命中返回 nil, nil
func (u *Users) FindByID(ctx context.Context, id uint64) (*models.Users, error) {
	user, err := u.Repo.FindByWhere(ctx, "id = ?", id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	user, err := u.Repo.FindByWhere(ctx, "username = ?", username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return user, err
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// IsEmailExist 判断邮箱是否存在
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}
