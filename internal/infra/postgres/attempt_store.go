package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

// AttemptStore is the bun-backed implementation of app.AttemptStore.
// Inserts only; attempts are never updated or deleted.
type AttemptStore struct {
	db *bun.DB
}

func NewAttemptStore(db *bun.DB) *AttemptStore {
	return &AttemptStore{db: db}
}

func (s *AttemptStore) Create(ctx context.Context, attempt *domain.Attempt) error {
	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	row := attemptRow{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		QuizID:      attempt.QuizID,
		Score:       attempt.Score,
		Answers:     answers,
		CompletedAt: attempt.CompletedAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (s *AttemptStore) ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.listByUser(ctx, userID, 0)
}

func (s *AttemptStore) RecentByUser(ctx context.Context, userID string, limit int) ([]domain.Attempt, error) {
	return s.listByUser(ctx, userID, limit)
}

func (s *AttemptStore) listByUser(ctx context.Context, userID string, limit int) ([]domain.Attempt, error) {
	var rows []attemptRow
	q := s.db.NewSelect().Model(&rows).
		Where("qa.user_id = ?", userID).
		Order("completed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	attempts := make([]domain.Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, row.toDomain())
	}
	return attempts, nil
}

func (s *AttemptStore) Count(ctx context.Context) (int, error) {
	return s.db.NewSelect().Model((*attemptRow)(nil)).Count(ctx)
}
