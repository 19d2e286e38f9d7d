package memory

import (
	"context"
	"sort"
	"sync"

	"cybershield-service/internal/domain"
)

// AttemptStore is a map-backed implementation of app.AttemptStore.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts []domain.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{}
}

func (s *AttemptStore) Create(_ context.Context, attempt *domain.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, *attempt)
	return nil
}

func (s *AttemptStore) ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.RecentByUser(ctx, userID, 0)
}

func (s *AttemptStore) RecentByUser(_ context.Context, userID string, limit int) ([]domain.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var attempts []domain.Attempt
	for _, attempt := range s.attempts {
		if attempt.UserID == userID {
			attempts = append(attempts, attempt)
		}
	}
	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].CompletedAt.After(attempts[j].CompletedAt)
	})
	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}

func (s *AttemptStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.attempts), nil
}

// ByUser returns all attempts grouped by user, for aggregation.
func (s *AttemptStore) ByUser() map[string][]domain.Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	grouped := make(map[string][]domain.Attempt)
	for _, attempt := range s.attempts {
		grouped[attempt.UserID] = append(grouped[attempt.UserID], attempt)
	}
	return grouped
}
