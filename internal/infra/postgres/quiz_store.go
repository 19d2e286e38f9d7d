package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"cybershield-service/internal/domain"

	"github.com/uptrace/bun"
)

// QuizStore is the bun-backed implementation of app.QuizStore. Question
// payloads live in a jsonb column; rows with malformed payloads decode to
// quizzes with no questions, which the app layer treats as unavailable.
type QuizStore struct {
	db *bun.DB
}

func NewQuizStore(db *bun.DB) *QuizStore {
	return &QuizStore{db: db}
}

func (s *QuizStore) List(ctx context.Context) ([]domain.Quiz, error) {
	var rows []quizRow
	if err := s.db.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	quizzes := make([]domain.Quiz, 0, len(rows))
	for _, row := range rows {
		quizzes = append(quizzes, row.toDomain())
	}
	return quizzes, nil
}

func (s *QuizStore) GetByID(ctx context.Context, id string) (domain.Quiz, error) {
	var row quizRow
	err := s.db.NewSelect().Model(&row).Where("q.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Quiz{}, domain.ErrQuizNotFound
		}
		return domain.Quiz{}, fmt.Errorf("select quiz: %w", err)
	}
	return row.toDomain(), nil
}

func (s *QuizStore) ListByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Quiz, error) {
	var rows []quizRow
	err := s.db.NewSelect().Model(&rows).Where("q.difficulty = ?", string(difficulty)).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes by difficulty: %w", err)
	}
	quizzes := make([]domain.Quiz, 0, len(rows))
	for _, row := range rows {
		quizzes = append(quizzes, row.toDomain())
	}
	return quizzes, nil
}

func (s *QuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	row := quizRow{
		ID:         quiz.ID,
		Title:      quiz.Title,
		Category:   quiz.Category,
		Difficulty: string(quiz.Difficulty),
		Questions:  questions,
		CreatedAt:  quiz.CreatedAt,
	}
	if _, err := s.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

func (s *QuizStore) Count(ctx context.Context) (int, error) {
	return s.db.NewSelect().Model((*quizRow)(nil)).Count(ctx)
}
