package app

import (
	"sort"

	"cybershield-service/internal/domain"
)

// leaderboardLimit caps the ranked list returned to clients.
const leaderboardLimit = 50

// RankLeaderboard orders entries by total score descending and truncates to
// the top 50. Equal totals tie-break on user ID ascending so the ordering is
// deterministic across recomputations.
func RankLeaderboard(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	ranked := make([]domain.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > leaderboardLimit {
		ranked = ranked[:leaderboardLimit]
	}
	return ranked
}
