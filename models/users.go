package models

import (
	"time"
)

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Username  string    `gorm:"column:username;size:64;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;size:128;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	Role      string    `gorm:"column:role;size:32;not null;default:user" json:"role"` // user / admin
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
