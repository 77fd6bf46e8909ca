package service

import (
	"context"
	"fmt"

	"ecoconnect/models"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, actorID, targetID uint64) (*models.Users, error)
	Unfollow(ctx context.Context, actorID, targetID uint64) (*models.Users, error)
}

type FollowService struct {
	UserRepo   UserRepo
	FollowRepo FollowRepo
	Activity   IActivityService
}

// Follow 关注用户，成功后追加一条 follow 动态
func (s *FollowService) Follow(ctx context.Context, actorID, targetID uint64) (*models.Users, error) {
	if actorID == targetID {
		return nil, ErrSelfFollow
	}

	actor, err := s.UserRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	target, err := s.UserRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	isFollowing, err := s.FollowRepo.IsFollowing(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if isFollowing {
		return nil, ErrAlreadyFollowing
	}

	if err := s.FollowRepo.CreateEdge(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	// 关注边已落库；动态写入失败时不回滚关注关系
	relatedID := targetID
	content := fmt.Sprintf("Started following %s", target.Username)
	if _, err := s.Activity.Record(ctx, actorID, models.ActivityTypeFollow, content, &relatedID); err != nil {
		return nil, err
	}

	return target, nil
}

// Unfollow 取消关注，不记录动态
func (s *FollowService) Unfollow(ctx context.Context, actorID, targetID uint64) (*models.Users, error) {
	actor, err := s.UserRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}

	target, err := s.UserRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	isFollowing, err := s.FollowRepo.IsFollowing(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if !isFollowing {
		return nil, ErrNotFollowing
	}

	if err := s.FollowRepo.DeleteEdge(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	return target, nil
}
