package app

import (
	"context"

	"cybershield-service/internal/domain"
)

// SessionState is the phase of a quiz run.
type SessionState int

const (
	// StateInProgress means the user is answering questions.
	StateInProgress SessionState = iota
	// StateSubmitting means all answers are collected and the attempt is
	// awaiting persistence. Submission failures keep the session here so the
	// user can retry without losing answers.
	StateSubmitting
	// StateCompleted is terminal; the review is available.
	StateCompleted
)

// PersistFunc stores a finished attempt. A nil PersistFunc (unauthenticated
// user) skips persistence but still produces a review.
type PersistFunc func(ctx context.Context, score int, answers []int) error

// QuizSession walks a single user through one quiz, one question at a time,
// with no backward navigation. It is driven by sequential user input and is
// not safe for concurrent use; it never needs to be.
type QuizSession struct {
	quiz     domain.Quiz
	state    SessionState
	current  int
	answers  []int
	selected int
	chosen   bool
	review   Review
}

// NewQuizSession starts a session at the first question. A quiz with no
// questions goes straight to Submitting, where Submit yields a zero score.
func NewQuizSession(quiz domain.Quiz) *QuizSession {
	s := &QuizSession{quiz: quiz, answers: make([]int, 0, len(quiz.Questions))}
	if len(quiz.Questions) == 0 {
		s.state = StateSubmitting
	}
	return s
}

// Select records a tentative choice for the current question. It may be
// called any number of times before advancing; only the last choice counts.
// Returns false outside InProgress or for an index not on the current question.
func (s *QuizSession) Select(option int) bool {
	if s.state != StateInProgress {
		return false
	}
	if option < 0 || option >= len(s.quiz.Questions[s.current].Options) {
		return false
	}
	s.selected = option
	s.chosen = true
	return true
}

// Advance commits the tentative choice and moves to the next question, or to
// Submitting after the last one. Without a tentative choice it is a no-op
// (the caller disables the action rather than handling an error).
func (s *QuizSession) Advance() bool {
	if s.state != StateInProgress || !s.chosen {
		return false
	}
	s.answers = append(s.answers, s.selected)
	s.chosen = false
	if s.current < len(s.quiz.Questions)-1 {
		s.current++
		return true
	}
	s.state = StateSubmitting
	return true
}

// Submit grades the collected answers and, when persist is non-nil, stores
// the attempt. A persistence failure leaves the session in Submitting with
// all answers intact so Submit can be called again.
func (s *QuizSession) Submit(ctx context.Context, persist PersistFunc) (Review, error) {
	if s.state != StateSubmitting {
		return Review{}, domain.ErrInvalidAttempt
	}
	review := Grade(s.quiz.Questions, s.answers)
	if persist != nil {
		if err := persist(ctx, review.Score, s.Answers()); err != nil {
			return Review{}, err
		}
	}
	s.review = review
	s.state = StateCompleted
	return review, nil
}

// Retry discards all session state and starts over with a fresh quiz. The
// new quiz is independent of the previous one; repeats are possible.
func (s *QuizSession) Retry(next domain.Quiz) {
	*s = *NewQuizSession(next)
}

// State returns the current phase.
func (s *QuizSession) State() SessionState { return s.state }

// CurrentIndex returns the zero-based index of the question being answered.
func (s *QuizSession) CurrentIndex() int { return s.current }

// Answers returns a copy of the committed answers so far.
func (s *QuizSession) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Review returns the graded outcome; only meaningful once Completed.
func (s *QuizSession) Review() Review { return s.review }
