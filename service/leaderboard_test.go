package service

import (
	"context"
	"testing"
	"time"

	"ecoconnect/models"
)

type fakeWasteLogRepo struct {
	since time.Time
	limit int
	rows  []*models.LeaderboardRow
}

func (f *fakeWasteLogRepo) AggregateSince(_ context.Context, since time.Time, limit int) ([]*models.LeaderboardRow, error) {
	f.since = since
	f.limit = limit
	return f.rows, nil
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		in   string
		want Timeframe
	}{
		{"week", TimeframeWeek},
		{"month", TimeframeMonth},
		{"all-time", TimeframeAllTime},
		{"", TimeframeAllTime},
		{"bogus", TimeframeAllTime},
		{"WEEK", TimeframeAllTime}, // 大小写敏感，未识别即回落
	}
	for _, tt := range tests {
		if got := ParseTimeframe(tt.in); got != tt.want {
			t.Errorf("ParseTimeframe(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTimeframeString(t *testing.T) {
	tests := []struct {
		tf   Timeframe
		want string
	}{
		{TimeframeWeek, "week"},
		{TimeframeMonth, "month"},
		{TimeframeAllTime, "all-time"},
	}
	for _, tt := range tests {
		if got := tt.tf.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.tf, got, tt.want)
		}
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	if got := TimeframeWeek.WindowStart(now); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("week window start = %v", got)
	}
	if got := TimeframeMonth.WindowStart(now); !got.Equal(now.AddDate(0, 0, -30)) {
		t.Errorf("month window start = %v", got)
	}
	if got := TimeframeAllTime.WindowStart(now); !got.Equal(time.Unix(0, 0)) {
		t.Errorf("all-time window start = %v", got)
	}
}

func TestGetLeaderboard(t *testing.T) {
	repo := &fakeWasteLogRepo{
		rows: []*models.LeaderboardRow{
			{UserID: 1, Username: "alice", TotalLogs: 2, TotalAmount: 8},
		},
	}
	s := &LeaderboardService{WasteLogRepo: repo}

	before := time.Now()
	rows, err := s.GetLeaderboard(context.Background(), TimeframeWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 1 || rows[0].Username != "alice" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if repo.limit != LeaderboardLimit {
		t.Errorf("limit = %d, want %d", repo.limit, LeaderboardLimit)
	}

	wantSince := before.AddDate(0, 0, -7)
	if repo.since.Before(wantSince.Add(-time.Minute)) || repo.since.After(wantSince.Add(time.Minute)) {
		t.Errorf("week window start = %v, want ~%v", repo.since, wantSince)
	}
}

func TestGetLeaderboard_AllTimeWindow(t *testing.T) {
	repo := &fakeWasteLogRepo{}
	s := &LeaderboardService{WasteLogRepo: repo}

	if _, err := s.GetLeaderboard(context.Background(), TimeframeAllTime); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.since.Equal(time.Unix(0, 0)) {
		t.Errorf("all-time window start = %v, want unix epoch", repo.since)
	}
}
