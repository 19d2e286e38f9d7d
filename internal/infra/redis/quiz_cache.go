package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cybershield-service/internal/app"
	"cybershield-service/internal/domain"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	quizListKey          = "quizzes:all"
	quizDifficultyPrefix = "quizzes:difficulty:"
	quizKeyPrefix        = "quiz:"
)

// QuizCache is a cache-aside layer in front of another app.QuizStore.
// Catalog reads are served from JSON blobs with a short jittered TTL; misses
// are collapsed through singleflight so a cold key costs a single database
// read. Cache failures are logged and treated as misses; the catalog is
// always reloadable.
type QuizCache struct {
	client *redis.Client
	inner  app.QuizStore
	ttl    time.Duration
	sf     singleflight.Group
}

func NewQuizCache(client *redis.Client, inner app.QuizStore, ttl time.Duration) *QuizCache {
	return &QuizCache{client: client, inner: inner, ttl: ttl}
}

func (c *QuizCache) List(ctx context.Context) ([]domain.Quiz, error) {
	return c.cachedList(ctx, quizListKey, c.inner.List)
}

func (c *QuizCache) ListByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Quiz, error) {
	return c.cachedList(ctx, quizDifficultyPrefix+string(difficulty), func(ctx context.Context) ([]domain.Quiz, error) {
		return c.inner.ListByDifficulty(ctx, difficulty)
	})
}

func (c *QuizCache) GetByID(ctx context.Context, id string) (domain.Quiz, error) {
	key := quizKeyPrefix + id
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var quiz domain.Quiz
		if err := json.Unmarshal(raw, &quiz); err == nil {
			return quiz, nil
		}
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		quiz, err := c.inner.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, quiz)
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

// Create writes through to the backing store and invalidates every key the
// new quiz could appear under.
func (c *QuizCache) Create(ctx context.Context, quiz *domain.Quiz) error {
	if err := c.inner.Create(ctx, quiz); err != nil {
		return err
	}
	keys := []string{
		quizListKey,
		quizDifficultyPrefix + string(quiz.Difficulty),
		quizKeyPrefix + quiz.ID,
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("quiz cache invalidate: %v", err)
	}
	return nil
}

func (c *QuizCache) Count(ctx context.Context) (int, error) {
	return c.inner.Count(ctx)
}

func (c *QuizCache) cachedList(ctx context.Context, key string, load func(context.Context) ([]domain.Quiz, error)) ([]domain.Quiz, error) {
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var quizzes []domain.Quiz
		if err := json.Unmarshal(raw, &quizzes); err == nil {
			return quizzes, nil
		}
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		quizzes, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, quizzes)
		return quizzes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Quiz), nil
}

func (c *QuizCache) set(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("quiz cache marshal: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, ttlWithJitter(c.ttl)).Err(); err != nil {
		log.Printf("quiz cache set: %v", err)
	}
}
