package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ecoconnect/models"
)

type fakeAchievementRepo struct {
	achievements []*models.Achievement
}

func (f *fakeAchievementRepo) ListByUser(_ context.Context, userID uint64) ([]*models.Achievement, error) {
	result := make([]*models.Achievement, 0)
	for _, a := range f.achievements {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func newFeedService(follows *fakeFollowRepo, activities *fakeActivityRepo, achievements *fakeAchievementRepo) *FeedService {
	return &FeedService{
		FollowRepo:      follows,
		ActivityRepo:    activities,
		AchievementRepo: achievements,
	}
}

func TestGetFeed_Scope(t *testing.T) {
	follows := newFakeFollowRepo()
	activities := &fakeActivityRepo{}
	_ = follows.CreateEdge(context.Background(), 1, 2) // u1 关注 u2

	base := time.Now()
	for i, owner := range []uint64{1, 2, 3} {
		_ = activities.Create(context.Background(), &models.ActivityFeed{
			UserID:       owner,
			ActivityType: models.ActivityTypeFollow,
			Content:      fmt.Sprintf("entry %d", i),
			CreatedAt:    base.Add(time.Duration(i) * time.Second),
		})
	}

	s := newFeedService(follows, activities, &fakeAchievementRepo{})
	feed, err := s.GetFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(feed) != 2 {
		t.Fatalf("expected 2 entries (self + followee), got %d", len(feed))
	}
	for _, e := range feed {
		if e.UserID != 1 && e.UserID != 2 {
			t.Errorf("entry owned by %d leaked into feed", e.UserID)
		}
	}
	// 时间倒序
	if feed[0].CreatedAt.Before(feed[1].CreatedAt) {
		t.Error("feed not ordered by created_at descending")
	}
}

func TestGetFeed_Cap(t *testing.T) {
	follows := newFakeFollowRepo()
	activities := &fakeActivityRepo{}

	base := time.Now()
	for i := 0; i < FeedLimit+10; i++ {
		_ = activities.Create(context.Background(), &models.ActivityFeed{
			UserID:    1,
			Content:   fmt.Sprintf("entry %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	s := newFeedService(follows, activities, &fakeAchievementRepo{})
	feed, err := s.GetFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(feed) != FeedLimit {
		t.Fatalf("expected feed capped at %d, got %d", FeedLimit, len(feed))
	}
	if feed[0].Content != fmt.Sprintf("entry %d", FeedLimit+9) {
		t.Errorf("expected newest entry first, got %q", feed[0].Content)
	}
}

func TestGetFeed_TieBreak(t *testing.T) {
	follows := newFakeFollowRepo()
	activities := &fakeActivityRepo{}

	// 相同时间戳，按插入顺序（ID）新的在前
	ts := time.Now()
	for i := 0; i < 3; i++ {
		_ = activities.Create(context.Background(), &models.ActivityFeed{
			UserID:    1,
			Content:   fmt.Sprintf("entry %d", i),
			CreatedAt: ts,
		})
	}

	s := newFeedService(follows, activities, &fakeAchievementRepo{})
	feed, err := s.GetFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(feed); i++ {
		if feed[i-1].ID < feed[i].ID {
			t.Fatalf("tie not broken by insertion order: %d before %d", feed[i-1].ID, feed[i].ID)
		}
	}
}

func TestGetAchievements(t *testing.T) {
	achievements := &fakeAchievementRepo{
		achievements: []*models.Achievement{
			{ID: 1, UserID: 1, Name: "First Log"},
			{ID: 2, UserID: 2, Name: "Composter"},
		},
	}
	s := newFeedService(newFakeFollowRepo(), &fakeActivityRepo{}, achievements)

	got, err := s.GetAchievements(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "First Log" {
		t.Fatalf("unexpected achievements: %+v", got)
	}
}
