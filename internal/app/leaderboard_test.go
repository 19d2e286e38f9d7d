package app_test

import (
	"fmt"
	"testing"

	"cybershield-service/internal/app"
	"cybershield-service/internal/domain"
)

func TestRankLeaderboardSortsByTotalScore(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{ID: "u1", TotalScore: 50},
		{ID: "u2", TotalScore: 300},
		{ID: "u3", TotalScore: 120},
	}

	ranked := app.RankLeaderboard(entries)

	if ranked[0].ID != "u2" || ranked[1].ID != "u3" || ranked[2].ID != "u1" {
		t.Fatalf("unexpected order: %+v", ranked)
	}
	// Input order is untouched.
	if entries[0].ID != "u1" {
		t.Fatalf("input slice must not be reordered, got %+v", entries)
	}
}

func TestRankLeaderboardTieBreaksOnID(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{ID: "zz", TotalScore: 100},
		{ID: "aa", TotalScore: 100},
		{ID: "mm", TotalScore: 100},
	}

	ranked := app.RankLeaderboard(entries)

	if ranked[0].ID != "aa" || ranked[1].ID != "mm" || ranked[2].ID != "zz" {
		t.Fatalf("ties must order by ID ascending, got %+v", ranked)
	}
}

func TestRankLeaderboardCapsAtFifty(t *testing.T) {
	entries := make([]domain.LeaderboardEntry, 0, 60)
	for i := 0; i < 60; i++ {
		entries = append(entries, domain.LeaderboardEntry{
			ID:         fmt.Sprintf("u%02d", i),
			TotalScore: i,
		})
	}

	ranked := app.RankLeaderboard(entries)

	if len(ranked) != 50 {
		t.Fatalf("expected 50 entries, got %d", len(ranked))
	}
	if ranked[0].TotalScore != 59 {
		t.Fatalf("expected highest score first, got %+v", ranked[0])
	}
}
