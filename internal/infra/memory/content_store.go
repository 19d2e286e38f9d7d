package memory

import (
	"context"
	"sort"
	"sync"

	"cybershield-service/internal/domain"
)

// ArticleStore is a map-backed implementation of app.ArticleStore.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
}

func NewArticleStore() *ArticleStore {
	return &ArticleStore{articles: make(map[string]domain.Article)}
}

func (s *ArticleStore) List(_ context.Context) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	articles := make([]domain.Article, 0, len(s.articles))
	for _, article := range s.articles {
		articles = append(articles, article)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (s *ArticleStore) GetBySlug(_ context.Context, slug string) (domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, article := range s.articles {
		if article.Slug == slug {
			return article, nil
		}
	}
	return domain.Article{}, domain.ErrArticleNotFound
}

func (s *ArticleStore) Create(_ context.Context, article *domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[article.ID] = *article
	return nil
}

func (s *ArticleStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}

// QuizStore is a map-backed implementation of app.QuizStore.
type QuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]domain.Quiz
	order   []string
}

func NewQuizStore() *QuizStore {
	return &QuizStore{quizzes: make(map[string]domain.Quiz)}
}

func (s *QuizStore) List(_ context.Context) ([]domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quizzes := make([]domain.Quiz, 0, len(s.order))
	for _, id := range s.order {
		quizzes = append(quizzes, s.quizzes[id])
	}
	return quizzes, nil
}

func (s *QuizStore) GetByID(_ context.Context, id string) (domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.quizzes[id]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *QuizStore) ListByDifficulty(_ context.Context, difficulty domain.Difficulty) ([]domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var quizzes []domain.Quiz
	for _, id := range s.order {
		if quiz := s.quizzes[id]; quiz.Difficulty == difficulty {
			quizzes = append(quizzes, quiz)
		}
	}
	return quizzes, nil
}

func (s *QuizStore) Create(_ context.Context, quiz *domain.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quizzes[quiz.ID]; !ok {
		s.order = append(s.order, quiz.ID)
	}
	s.quizzes[quiz.ID] = *quiz
	return nil
}

func (s *QuizStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quizzes), nil
}
