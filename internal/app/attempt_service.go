package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cybershield-service/internal/domain"

	"github.com/google/uuid"
)

// recentAttemptsDefault is the page size for the dashboard's recent list.
const recentAttemptsDefault = 10

// AttemptService validates and records completed quiz attempts.
type AttemptService struct {
	attempts AttemptStore
	quizzes  QuizStore
}

func NewAttemptService(attempts AttemptStore, quizzes QuizStore) *AttemptService {
	return &AttemptService{attempts: attempts, quizzes: quizzes}
}

// Submit persists one fully-formed attempt. The attempt must reference an
// existing quiz, carry a score in [0,100], and hold exactly one answer per
// question. Validation failures wrap ErrInvalidAttempt.
func (s *AttemptService) Submit(ctx context.Context, userID, quizID string, score int, answers []int) (domain.Attempt, error) {
	if quizID == "" {
		return domain.Attempt{}, fmt.Errorf("%w: missing quizId", domain.ErrInvalidAttempt)
	}
	if score < 0 || score > 100 {
		return domain.Attempt{}, fmt.Errorf("%w: score %d out of range", domain.ErrInvalidAttempt, score)
	}

	quiz, err := s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, domain.ErrQuizNotFound) {
			return domain.Attempt{}, fmt.Errorf("%w: unknown quiz %s", domain.ErrInvalidAttempt, quizID)
		}
		return domain.Attempt{}, err
	}
	if len(answers) != len(quiz.Questions) {
		return domain.Attempt{}, fmt.Errorf("%w: %d answers for %d questions",
			domain.ErrInvalidAttempt, len(answers), len(quiz.Questions))
	}

	attempt := domain.Attempt{
		ID:          uuid.NewString(),
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		Answers:     answers,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.attempts.Create(ctx, &attempt); err != nil {
		return domain.Attempt{}, err
	}
	return attempt, nil
}

// ListByUser returns the caller's attempts newest first.
func (s *AttemptService) ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.attempts.ListByUser(ctx, userID)
}

// Recent returns the caller's newest attempts, capped at ten.
func (s *AttemptService) Recent(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.attempts.RecentByUser(ctx, userID, recentAttemptsDefault)
}
