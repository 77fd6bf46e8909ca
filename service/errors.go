package service

import "errors"

// 业务错误，handler 层映射为 4xx
var (
	ErrSelfFollow       = errors.New("Cannot follow yourself")
	ErrAlreadyFollowing = errors.New("Already following this user")
	ErrNotFollowing     = errors.New("Not following this user")
	ErrUserNotFound     = errors.New("User not found")

	ErrUsernameTaken      = errors.New("Username already taken")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidToken       = errors.New("Invalid or expired token")
)
