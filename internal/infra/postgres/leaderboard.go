package postgres

import (
	"context"
	"fmt"
	"math"

	"cybershield-service/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// LeaderboardSource runs the per-user aggregation as one SQL pass over users,
// attempts, and achievements. It implements app.LeaderboardSource; ranking
// and truncation stay in the app layer.
type LeaderboardSource struct {
	pool *pgxpool.Pool
}

func NewLeaderboardSource(pool *pgxpool.Pool) *LeaderboardSource {
	return &LeaderboardSource{pool: pool}
}

func (s *LeaderboardSource) Aggregate(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT u.id,
		       COALESCE(u.first_name, ''),
		       COALESCE(u.email, ''),
		       COALESCE(SUM(qa.score), 0)::int,
		       COUNT(qa.id)::int,
		       (SELECT COUNT(*) FROM user_achievements ua WHERE ua.user_id = u.id)::int
		FROM users u
		LEFT JOIN quiz_attempts qa ON qa.user_id = u.id
		GROUP BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("aggregate leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(&entry.ID, &entry.FirstName, &entry.Email,
			&entry.TotalScore, &entry.QuizCount, &entry.Badges); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		if entry.QuizCount > 0 {
			entry.AverageScore = int(math.Round(float64(entry.TotalScore) / float64(entry.QuizCount)))
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate leaderboard: %w", err)
	}
	return entries, nil
}
