package memory

import (
	"context"
	"math"

	"cybershield-service/internal/domain"
)

// LeaderboardSource aggregates over the in-memory stores. Implements
// app.LeaderboardSource for tests and redis/postgres-less runs.
type LeaderboardSource struct {
	users    *UserStore
	attempts *AttemptStore
	badges   *BadgeStore
}

func NewLeaderboardSource(users *UserStore, attempts *AttemptStore, badges *BadgeStore) *LeaderboardSource {
	return &LeaderboardSource{users: users, attempts: attempts, badges: badges}
}

func (s *LeaderboardSource) Aggregate(_ context.Context) ([]domain.LeaderboardEntry, error) {
	attemptsByUser := s.attempts.ByUser()
	badgeCounts := s.badges.CountByUser()

	users := s.users.All()
	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entry := domain.LeaderboardEntry{
			ID:        user.ID,
			FirstName: user.FirstName,
			Email:     user.Email,
			Badges:    badgeCounts[user.ID],
		}
		for _, attempt := range attemptsByUser[user.ID] {
			entry.TotalScore += attempt.Score
			entry.QuizCount++
		}
		if entry.QuizCount > 0 {
			entry.AverageScore = int(math.Round(float64(entry.TotalScore) / float64(entry.QuizCount)))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
