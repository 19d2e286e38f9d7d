package app

import (
	"context"
	"math/rand"

	"cybershield-service/internal/domain"
)

// QuizService serves quizzes for practice runs: a random pick from the
// catalog and a difficulty-adaptive suggestion. Safe for concurrent use.
type QuizService struct {
	quizzes  QuizStore
	attempts AttemptStore
}

func NewQuizService(quizzes QuizStore, attempts AttemptStore) *QuizService {
	return &QuizService{quizzes: quizzes, attempts: attempts}
}

// RandomQuiz returns any quiz from the catalog, or ErrQuizNotFound when the
// catalog is empty. Quizzes whose question payload decoded to nothing are
// skipped; they count as unavailable rather than crashing a session.
func (s *QuizService) RandomQuiz(ctx context.Context) (domain.Quiz, error) {
	quizzes, err := s.quizzes.List(ctx)
	if err != nil {
		return domain.Quiz{}, err
	}
	quizzes = playable(quizzes)
	if len(quizzes) == 0 {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	// The top-level source is lock-protected, unlike a shared rand.Rand.
	return quizzes[rand.Intn(len(quizzes))], nil
}

// SuggestedQuiz picks a quiz at the tier SuggestDifficulty derives from the
// user's last five attempts. No quiz at that tier is a valid empty outcome,
// reported as (nil, nil): the caller shows no suggestion.
func (s *QuizService) SuggestedQuiz(ctx context.Context, userID string) (*domain.Quiz, error) {
	recent, err := s.attempts.RecentByUser(ctx, userID, maxRecentAttempts)
	if err != nil {
		return nil, err
	}

	tier := SuggestDifficulty(recent)
	candidates, err := s.quizzes.ListByDifficulty(ctx, tier)
	if err != nil {
		return nil, err
	}
	candidates = playable(candidates)
	if len(candidates) == 0 {
		return nil, nil
	}
	// Selection among ties is arbitrary; first match is fine.
	quiz := candidates[0]
	return &quiz, nil
}

// playable copies rather than filters in place; the input slice may be shared
// with other callers (for example out of a cache).
func playable(quizzes []domain.Quiz) []domain.Quiz {
	out := make([]domain.Quiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		if len(quiz.Questions) > 0 {
			out = append(out, quiz)
		}
	}
	return out
}
