package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cybershield-service/internal/domain"
	"cybershield-service/internal/infra/memory"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// countingQuizStore counts reads hitting the backing store.
type countingQuizStore struct {
	*memory.QuizStore
	reads int64
}

func (s *countingQuizStore) List(ctx context.Context) ([]domain.Quiz, error) {
	atomic.AddInt64(&s.reads, 1)
	return s.QuizStore.List(ctx)
}

func (s *countingQuizStore) ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]domain.Quiz, error) {
	atomic.AddInt64(&s.reads, 1)
	return s.QuizStore.ListByDifficulty(ctx, d)
}

func (s *countingQuizStore) GetByID(ctx context.Context, id string) (domain.Quiz, error) {
	atomic.AddInt64(&s.reads, 1)
	return s.QuizStore.GetByID(ctx, id)
}

func (s *countingQuizStore) readCount() int64 {
	return atomic.LoadInt64(&s.reads)
}

func newQuizCacheFixture(t *testing.T) (*QuizCache, *countingQuizStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inner := &countingQuizStore{QuizStore: memory.NewQuizStore()}

	quiz := domain.Quiz{
		ID:         "quiz-1",
		Title:      "Basics",
		Difficulty: domain.DifficultyBeginner,
		Questions: []domain.Question{
			{Question: "Pick A", Options: []string{"A", "B"}, CorrectAnswer: 0},
		},
	}
	if err := inner.Create(context.Background(), &quiz); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	return NewQuizCache(client, inner, time.Minute), inner, mr
}

func TestQuizCacheListServesFromCache(t *testing.T) {
	ctx := context.Background()
	cache, inner, mr := newQuizCacheFixture(t)

	first, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != 1 || first[0].ID != "quiz-1" {
		t.Fatalf("unexpected catalog %+v", first)
	}
	if !mr.Exists("quizzes:all") {
		t.Fatalf("expected catalog key in redis")
	}

	if _, err := cache.List(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if inner.readCount() != 1 {
		t.Fatalf("second list must hit the cache, got %d backing reads", inner.readCount())
	}
}

func TestQuizCacheGetByIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, inner, _ := newQuizCacheFixture(t)

	quiz, err := cache.GetByID(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(quiz.Questions) != 1 || quiz.Questions[0].CorrectAnswer != 0 {
		t.Fatalf("questions must survive the cache round trip, got %+v", quiz)
	}

	if _, err := cache.GetByID(ctx, "quiz-1"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if inner.readCount() != 1 {
		t.Fatalf("second get must hit the cache, got %d backing reads", inner.readCount())
	}

	if _, err := cache.GetByID(ctx, "quiz-404"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestQuizCacheCreateInvalidates(t *testing.T) {
	ctx := context.Background()
	cache, _, mr := newQuizCacheFixture(t)

	if _, err := cache.ListByDifficulty(ctx, domain.DifficultyBeginner); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !mr.Exists("quizzes:difficulty:beginner") {
		t.Fatalf("expected difficulty key in redis")
	}

	quiz := domain.Quiz{
		ID:         "quiz-2",
		Title:      "More basics",
		Difficulty: domain.DifficultyBeginner,
		Questions: []domain.Question{
			{Question: "Pick B", Options: []string{"A", "B"}, CorrectAnswer: 1},
		},
	}
	if err := cache.Create(ctx, &quiz); err != nil {
		t.Fatalf("create: %v", err)
	}
	if mr.Exists("quizzes:difficulty:beginner") || mr.Exists("quizzes:all") {
		t.Fatalf("create must invalidate catalog keys")
	}

	listed, err := cache.ListByDifficulty(ctx, domain.DifficultyBeginner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected the new quiz after invalidation, got %+v", listed)
	}
}

func TestQuizCacheCorruptPayloadIsMiss(t *testing.T) {
	ctx := context.Background()
	cache, inner, mr := newQuizCacheFixture(t)

	if err := mr.Set("quizzes:all", "{not json"); err != nil {
		t.Fatalf("seed corrupt payload: %v", err)
	}

	listed, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("corrupt payload must fall through to the store, got %+v", listed)
	}
	if inner.readCount() != 1 {
		t.Fatalf("expected one backing read, got %d", inner.readCount())
	}
}

func TestQuizCacheConcurrentReads(t *testing.T) {
	ctx := context.Background()
	cache, _, _ := newQuizCacheFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := cache.List(ctx); err != nil {
					t.Errorf("list: %v", err)
					return
				}
				if _, err := cache.GetByID(ctx, "quiz-1"); err != nil {
					t.Errorf("get: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
